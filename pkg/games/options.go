package games

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	loader Loader
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultOptions returns the default options for a catalog.
func defaultOptions() *catalogOptions {
	return &catalogOptions{
		loader: DefaultLoader,
	}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithLoader configures the catalog to use a custom line Loader.
// The loader must honor the Loader contract: errors.ErrSkipLine for
// structural rejection, any other error to abort construction.
func WithLoader(loader Loader) Option {
	return func(c *catalogOptions) {
		if loader != nil {
			c.loader = loader
		}
	}
}
