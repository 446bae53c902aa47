package cfg

type Cfg struct {
	// Input
	File    string
	Strict  bool
	Profile string

	// Selection
	ID     string
	Offset int
	Limit  int

	// Output
	Format   string
	SelfLink string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}

// Lookup reports whether a single entry was requested.
func (c *Cfg) Lookup() bool {
	return c.ID != "" || c.Offset >= 0
}
