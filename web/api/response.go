package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"aqiform/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// APIResponse provides a consistent response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful response with data
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	return writeResponse(ctx, status, APIResponse{Success: true, Data: data})
}

// writeError sends an error response
func writeError(ctx rweb.Context, status int, message string) error {
	return writeResponse(ctx, status, APIResponse{Success: false, Error: message})
}

// writeResponse encodes resp as msgpack when the client asked for it,
// JSON otherwise
func writeResponse(ctx rweb.Context, status int, resp APIResponse) error {
	req := ctx.Request()
	if !models.WantsMsgPack(req.Header("Accept"), req.Header(models.BodyEncodingHeader)) {
		ctx.SetStatus(status)
		return ctx.WriteJSON(resp)
	}

	body, err := models.EncodeMsgPack(resp)
	if err != nil {
		logger.LogErr(err, "msgpack response", "path", req.Path())
		ctx.SetStatus(http.StatusInternalServerError)
		return ctx.WriteJSON(APIResponse{Success: false, Error: "failed to encode response"})
	}
	ctx.SetStatus(status)
	ctx.Response().SetHeader("Content-Type", models.MsgPackContentType)
	return ctx.Bytes(body)
}

// decodeBody reads a JSON body, or a msgpack one when the request says so
func decodeBody(ctx rweb.Context, v interface{}) error {
	req := ctx.Request()
	body := req.Body()
	if len(body) == 0 {
		return serr.New("empty request body")
	}

	if strings.HasPrefix(req.Header("Content-Type"), models.MsgPackContentType) ||
		strings.EqualFold(req.Header(models.BodyEncodingHeader), "msgpack") {
		return models.DecodeMsgPack(body, v)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return serr.Wrap(err, "failed to decode JSON body")
	}
	return nil
}
