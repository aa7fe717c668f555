package interfaces

// Upload describes an incoming media payload. The runtime never reads file
// bytes itself; hosts hand over descriptors and resolve object URLs.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
}

// ObjectURLProvider resolves an addressable URL for an upload, typically by
// staging the payload in host-managed storage.
type ObjectURLProvider interface {
	ObjectURL(upload Upload) (string, error)
}

// ObjectURLFunc adapts a plain function to ObjectURLProvider.
type ObjectURLFunc func(upload Upload) (string, error)

func (f ObjectURLFunc) ObjectURL(upload Upload) (string, error) { return f(upload) }
