package ports

// Signer computes content signatures used to detect whether a file's
// content changed since it was last cached.
//
//go:generate mockgen -source=signer.go -destination=mocks/mock_signer.go -package=mocks
type Signer interface {
	// SignText computes the signature of in-memory text.
	SignText(text string) string

	// SignFile computes the signature of the file at the given absolute
	// path by streaming its content.
	SignFile(path string) (string, error)
}
