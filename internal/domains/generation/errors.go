package generation

import "errors"

var (
	// ErrMissingCredential means no generative-service API key is
	// configured. The request never left the process.
	ErrMissingCredential = errors.New("generation credential is not configured")

	// ErrGenerationFailed covers transport errors, non-2xx upstream
	// responses, unparseable output and incomplete responses. There is no
	// retry policy; the caller may re-invoke.
	ErrGenerationFailed = errors.New("music generation failed")
)
