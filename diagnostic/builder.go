package diagnostic

// Sink receives emitted diagnostics; *session.Session implements it, keeping
// this package independent of the session package.
type Sink interface {
	AddDiagnostic(Diagnostic)
}

// Builder is the chainable, sole construction path for a Diagnostic.
type Builder struct {
	d Diagnostic
}

// New starts building a diagnostic with code's conventional severity.
func New(code Code) *Builder {
	return &Builder{d: Diagnostic{Code: code, Severity: DefaultSeverity(code)}}
}

// WithMessage sets the human-readable message.
func (b *Builder) WithMessage(msg string) *Builder {
	b.d.Message = msg
	return b
}

// WithSeverity overrides the code's conventional severity.
func (b *Builder) WithSeverity(s Severity) *Builder {
	b.d.Severity = s
	return b
}

// At attaches a resolved location. Callers typically obtain loc from the
// session's context, e.g. `ctx.LocationFromSpan(start, length)`.
func (b *Builder) At(loc Location) *Builder {
	l := loc
	b.d.Location = &l
	return b
}

// Emit finalizes the diagnostic and appends it to sink. It is the only way
// a Diagnostic reaches a session's diagnostic list.
func (b *Builder) Emit(sink Sink) {
	sink.AddDiagnostic(b.d)
}
