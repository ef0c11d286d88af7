package api

import (
	"net/http"

	"github.com/go-chi/render"
)

// Failure message strings are part of the wire contract and must match the
// front-end's expectations exactly, typos included.
const (
	msgUnauthorized        = "Unauthorized"
	msgInvalidBody         = "Invaild body"
	msgAccountNotFound     = "account not found"
	msgInsufficientBalance = "balance is insufficient"
	msgInternal            = "Something went wrong.."
)

type errorBody struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorBody{Message: message})
}
