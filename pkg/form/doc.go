// Package form implements the validation engine of the municipal complaint
// ("relato") form.
//
// The engine owns an ordered registry of nine fields (name, cpf, nascimento,
// phone, email, categoria, endereco, message, foto). Each field pairs a pure
// validator from pkg/validator with an optional keystroke mask from
// pkg/sanitizer. The host UI is reached only through the Input and
// ErrorDisplay interfaces handed to New, so the same engine drives a web
// page adapter, a terminal form or a test.
//
// # Lifecycle
//
//	mf := form.NewMemoryForm()
//	eng, err := form.New(mf.Bindings(), form.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	eng.Input(form.CPF, "52998224725")  // "529.982.247-25" written back
//	eng.Blur(form.CPF)                   // validates and updates the display
//
//	out := eng.Submit(ctx)
//	if !out.OK() {
//	    // out.FirstInvalid was scrolled into view and focused
//	    return
//	}
//	render(out.Report)
//	_ = eng.Acknowledge() // clears every value and error
//
// Each field moves between pristine, valid and invalid. Display updates are
// pushed to the host only when the state or the message changes, so
// repeated validation of an unchanged value is silent. Host writes
// (SetValue, Focus, Show ...) run after the engine lock is released, so a
// host may call back into the engine from them. Text values are
// trimmed before validation; file values are passed through.
//
// # Attachments
//
// The photo field reads Value.File, a *file.Attachment. Terminal hosts build
// it with file.Stat from a chosen path; web hosts receiving a multipart
// upload build it with file.FromFileHeader.
//
// # Missing bindings
//
// A field without an Input is logged as an error and skipped; a field without
// an ErrorDisplay is logged as a warning and still validated. With
// Config.Strict (or WithStrict) New returns ErrMissingInput and
// ErrMissingErrorDisplay joined instead.
//
// Nothing is ever transmitted. Submit only returns an Outcome whose Report
// is the snapshot a real backend would receive.
package form
