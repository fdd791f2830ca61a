package http

import (
	"context"
	"net/http"
	"strconv"

	"ordermanagement/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// queryConfirmer answers confirmations from the confirm query parameter and
// remembers the last prompt so a declined action can be reported back.
type queryConfirmer struct {
	approved bool
	asked    *ports.Confirmation
}

func confirmerFrom(c echo.Context) *queryConfirmer {
	approved, _ := strconv.ParseBool(c.QueryParam("confirm"))
	return &queryConfirmer{approved: approved}
}

func (q *queryConfirmer) Confirm(_ context.Context, c ports.Confirmation) (bool, error) {
	q.asked = &c
	return q.approved, nil
}

// ConfirmationRequired is returned with 428 when an action needs confirm=true.
type ConfirmationRequired struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (q *queryConfirmer) declined(c echo.Context) error {
	body := ConfirmationRequired{Code: http.StatusPreconditionRequired}
	if q.asked != nil {
		body.Kind = string(q.asked.Kind)
		body.Message = q.asked.Message
	}
	return c.JSON(http.StatusPreconditionRequired, body)
}
