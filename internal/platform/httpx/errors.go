package httpx

import (
	"net/http"

	"github.com/taskhive/taskhive/internal/platform/apierr"
)

// Error translates a failure into its wire response. Recognized taxonomy
// kinds map to their contracted status codes; anything else is an internal
// defect and surfaces as 500 with the underlying message. Duplicate-key
// conflicts share the 400 class with validation failures on the wire while
// staying a distinct kind in the taxonomy.
func Error(w http.ResponseWriter, err error) {
	apiErr, ok := apierr.From(err)
	if !ok {
		Msg(w, http.StatusInternalServerError, err.Error())
		return
	}
	switch apiErr.Kind {
	case apierr.KindUnauthenticated:
		Msg(w, http.StatusUnauthorized, apiErr.Msg)
	case apierr.KindNotFound:
		Msg(w, http.StatusNotFound, apiErr.Msg)
	case apierr.KindConflict:
		Msg(w, http.StatusBadRequest, apiErr.Msg)
	default:
		Msg(w, http.StatusBadRequest, apiErr.Msg)
	}
}
