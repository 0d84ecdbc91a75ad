package handler

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/engine"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

// Handler serves the calculation engine over HTTP.
type Handler struct {
	engine *engine.Engine
	reg    *jurisdiction.Registry
}

func New(reg *jurisdiction.Registry) *Handler {
	return &Handler{engine: engine.New(reg), reg: reg}
}

// Handle routes requests: POST /calculate and GET /jurisdictions.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "", "Method not allowed")
			return
		}
		h.handleCalculate(ctx)
	case "/jurisdictions":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "", "Method not allowed")
			return
		}
		h.handleJurisdictions(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "", "Not found")
	}
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	var ret model.TaxReturn
	if err := json.Unmarshal(ctx.PostBody(), &ret); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "", "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.engine.Process(&ret)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			writeError(ctx, fasthttp.StatusBadRequest, vErr.Code, vErr.Error())
			return
		}
		var uErr *jurisdiction.UnknownCodeError
		if errors.As(err, &uErr) {
			writeError(ctx, fasthttp.StatusBadRequest, model.CodeUnknownJurisdiction, uErr.Error())
			return
		}
		writeError(ctx, fasthttp.StatusInternalServerError, "", err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleJurisdictions(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string][]string{"jurisdictions": h.reg.Codes()})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, code, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}
