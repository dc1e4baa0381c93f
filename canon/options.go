package canon

// Options configures the top-level operations.
// A nil *Options selects the defaults.
type Options struct {
	// Schemes tells which schemes are standard. Defaults to [DefaultRegistry].
	Schemes *SchemeRegistry
	// Charset encodes non-ASCII queries of standard and file URLs.
	// Nil means UTF-8.
	Charset CharsetConverter
	// IDNA converts non-ASCII host names. Defaults to [IDNALookup].
	IDNA HostTranscoder
}

func (o *Options) schemes() *SchemeRegistry {
	if o == nil || o.Schemes == nil {
		return DefaultRegistry
	}
	return o.Schemes
}

func (o *Options) charset() CharsetConverter {
	if o == nil {
		return nil
	}
	return o.Charset
}

func (o *Options) idna() HostTranscoder {
	if o == nil || o.IDNA == nil {
		return IDNALookup
	}
	return o.IDNA
}
