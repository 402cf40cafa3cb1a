//go:build !amd64 && !arm64

package wave

func init() {
	// Other architectures report scalar mode with 16-byte Native vectors.
	setLevel(DispatchScalar)
}
