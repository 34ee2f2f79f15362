package media_storage

import "strings"

// LocalImages serves references from the public directory mounted at Prefix.
type LocalImages struct {
	Prefix string
}

func NewLocalImages(prefix string) LocalImages {
	return LocalImages{Prefix: strings.TrimRight(prefix, "/")}
}

func (l LocalImages) Resolve(ref string) string {
	if ref == "" || IsAbsoluteURL(ref) {
		return ref
	}
	return l.Prefix + "/" + strings.TrimLeft(ref, "/")
}
