package http

import (
	"net/http"
	"strconv"

	"ordermanagement/internal/core/application/editing"
	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StartCreateSession handles POST /api/v1/sessions.
func (s *Server) StartCreateSession(c echo.Context) error {
	session, err := s.editing.StartCreate(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSession(session.View(), session.Catalog()))
}

// StartEditSession handles POST /api/v1/orders/:id/sessions.
func (s *Server) StartEditSession(c echo.Context) error {
	id, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	session, err := s.editing.StartEdit(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSession(session.View(), session.Catalog()))
}

// GetSession handles GET /api/v1/sessions/:sid.
func (s *Server) GetSession(c echo.Context) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSession(session.View(), session.Catalog()))
}

// DiscardSession handles DELETE /api/v1/sessions/:sid.
func (s *Server) DiscardSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err = s.editing.Discard(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddLineItem handles POST /api/v1/sessions/:sid/items.
func (s *Server) AddLineItem(c echo.Context) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}

	var req AddLineItemRequest
	if err = c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	if err = session.AddProduct(kernel.ID(req.ProductID), string(req.Quantity)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSession(session.View(), session.Catalog()))
}

// EditLineItem handles PUT /api/v1/sessions/:sid/items/:index.
func (s *Server) EditLineItem(c echo.Context) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	index, err := lineIndex(c)
	if err != nil {
		return err
	}

	var req EditLineItemRequest
	if err = c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	if err = session.EditProduct(index, string(req.Quantity)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSession(session.View(), session.Catalog()))
}

// RemoveLineItem handles DELETE /api/v1/sessions/:sid/items/:index?confirm=true.
func (s *Server) RemoveLineItem(c echo.Context) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	index, err := lineIndex(c)
	if err != nil {
		return err
	}

	confirmer := confirmerFrom(c)
	removed, err := session.RemoveProduct(c.Request().Context(), index, confirmer)
	if err != nil {
		return err
	}
	if !removed {
		return confirmer.declined(c)
	}
	return c.JSON(http.StatusOK, toSession(session.View(), session.Catalog()))
}

// SubmitSession handles POST /api/v1/sessions/:sid/submit. The session is gone
// afterwards; clients reload the order list.
func (s *Server) SubmitSession(c echo.Context) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	mode := session.Mode()
	number := session.View().OrderNumber

	stored, err := s.editing.Submit(c.Request().Context(), session.ID())
	if err != nil {
		return err
	}

	result := SubmitResult{OrderNumber: number}
	if stored != nil {
		result.Order = toOrderDetail(stored)
	}

	status := http.StatusOK
	if mode == editing.ModeCreate {
		status = http.StatusCreated
	}
	return c.JSON(status, result)
}

func (s *Server) session(c echo.Context) (*editing.Session, error) {
	id, err := sessionID(c)
	if err != nil {
		return nil, err
	}
	return s.editing.Session(id)
}

func sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		return uuid.Nil, badRequest("session id must be a UUID")
	}
	return id, nil
}

// lineIndex reads the :index parameter. Range is checked by the draft.
func lineIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, badRequest("line item index must be an integer")
	}
	return index, nil
}
