package command

// Builder assembles a Command fluently.
type Builder struct {
	cmd Command
}

// New starts building a command called name.
func New(name string) *Builder {
	return &Builder{cmd: Command{Name: name}}
}

// WordArg appends a required single-word argument.
func (b *Builder) WordArg(name string) *Builder {
	b.cmd.Args = append(b.cmd.Args, name)
	return b
}

// SuggestMatching sets the completion candidates.
func (b *Builder) SuggestMatching(suggestions []string) *Builder {
	b.cmd.Suggestions = append([]string(nil), suggestions...)
	return b
}

// Executes sets the handler.
func (b *Builder) Executes(h Handler) *Builder {
	b.cmd.handler = h
	return b
}

// Build returns the command without registering it.
func (b *Builder) Build() *Command {
	cmd := b.cmd
	cmd.Args = append([]string(nil), b.cmd.Args...)
	return &cmd
}

// Register builds the command and stores it in r.
func (b *Builder) Register(r *Registry) error {
	return r.Register(b.Build())
}
