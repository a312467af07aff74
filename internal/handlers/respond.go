package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/Totarae/EazyBank/internal/correlation"
	"github.com/Totarae/EazyBank/internal/model"
	"github.com/Totarae/EazyBank/internal/validation"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// Ответы на операции изменения
const (
	status200 = "200"
	status201 = "201"
	status417 = "417"

	message200       = "Request processed successfully"
	message417Update = "Update operation failed. Please try again or contact Dev team"
	message417Delete = "Delete operation failed. Please try again or contact Dev team"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeStatus(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ResponseDto{StatusCode: code, StatusMsg: msg})
}

// writeError отдаёт ErrorResponse; 5xx логируются вместе с причиной
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("uri", r.RequestURI),
			zap.String("correlation_id", correlation.FromContext(r.Context())),
			zap.Error(err))
	}

	writeJSON(w, status, model.ErrorResponse{
		APIPath:      "uri=" + r.URL.Path,
		ErrorCode:    string(apperr.CodeOf(err)),
		ErrorMessage: apperr.Message(err),
		ErrorTime:    time.Now().UTC(),
	})
}

// decodeBody читает тело, проверяет его по схеме и раскладывает в dst
func decodeBody(r *http.Request, schema *gojsonschema.Schema, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperr.Validation("body: unreadable")
	}
	if err := validation.Body(schema, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperr.Validation("body: " + err.Error())
	}
	return nil
}

// mobileParam достаёт и проверяет ?mobileNumber=
func mobileParam(r *http.Request) (string, error) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := validation.MobileNumber(mobileNumber); err != nil {
		return "", err
	}
	return mobileNumber, nil
}
