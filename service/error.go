package service

import (
	"fmt"
	"net/http"
)

// Verify Interface Compliance
var _ error = (*Err)(nil)

// Err defines service errors.
type Err struct {
	Code    int64  `json:"code"`
	Message string `json:"error"`
}

var (
	NoErr           = Err{Code: 0, Message: ""}
	BadRequestErr   = Err{Code: http.StatusBadRequest, Message: "bad request"}
	NotFoundErr     = Err{Code: http.StatusNotFound, Message: "not found"}
	PrunedErr       = Err{Code: http.StatusGone, Message: "pruned"}
	InvalidBoundErr = Err{Code: http.StatusConflict, Message: "invalid pruning bound"}
	InternalErr     = Err{Code: http.StatusInternalServerError, Message: "internal error"}
)

func (e Err) Enrich(message string) Err {
	return Err{
		Code:    e.Code,
		Message: fmt.Sprintf("%s: %s", e.Message, message),
	}
}

func (e Err) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
