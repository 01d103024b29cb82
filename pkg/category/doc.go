// Package category holds the catalog of complaint categories offered by the
// report form.
//
// The default catalog is embedded from data/categories.yaml and parsed once;
// deployments can replace it with Load. Each entry pairs a stable slug, which
// is what the form stores, with the Portuguese label shown to citizens.
//
//	cat, err := category.Default()
//	if err != nil {
//	    return err
//	}
//	cat.Label("drenagem") // "Drenagem"
//
// The form validator only checks that some category was chosen; membership
// in the catalog is enforced by the hosts that render the select.
package category
