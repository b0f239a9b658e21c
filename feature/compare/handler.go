package compare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"bom-matcher/core/export"
	"bom-matcher/core/logger"
	"bom-matcher/core/tokenizer"
	"bom-matcher/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
	match   Config
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. match holds the configured defaults
// that query parameters override per request.
func NewHandler(service *Service, match Config) *Handler {
	return &Handler{service: service, match: match, logger: service.logger}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/", h.HandleCompare)
	group.Post("/columns", h.HandleColumns)
}

// ErrorResponse is the body of failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	// Columns lists the detected columns when a column is missing.
	Columns []string `json:"columns,omitempty"`
}

// HandleCompare runs a reconciliation over uploaded documents.
// @Summary Compare BOM and PKP
// @Description Reconciles the designators of a BOM against a pick-and-place file, returning the report as JSON or as a CSV/XLSX download.
// @Tags compare
// @Accept multipart/form-data
// @Produce json
// @Produce text/csv
// @Param bom formData file true "BOM document"
// @Param pkp formData file true "Pick-and-place document"
// @Param stock formData file false "Stock spreadsheet"
// @Param bom_kind formData string false "BOM kind (spreadsheet, delimited, freeform)"
// @Param pkp_kind formData string false "PKP kind (spreadsheet, delimited, freeform)"
// @Param override formData []string false "Part code overrides as CODE=RESOLVED"
// @Param strict query boolean false "Strict canonicalization"
// @Param explode query string false "Explode mode (full, delimiters, none)"
// @Param reject_hyphen query boolean false "Reject freeform candidates containing hyphens"
// @Param designator_column query string false "Designator column"
// @Param part_column query string false "Part code column"
// @Param errors_only query boolean false "Only return mismatched records"
// @Param format query string false "Response format (json, csv, xlsx)"
// @Param table query string false "Exported table (reconciliation, groups); all by default"
// @Success 200 {object} Report "Reconciliation report"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 422 {object} ErrorResponse "Unreadable document"
// @Router /compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	format := c.Query("format", "json")
	var exportFormat export.Format
	if format != "json" {
		f, err := export.ParseFormat(format)
		if err != nil {
			return h.fail(c, l, invalid(err))
		}
		exportFormat = f
	}
	table, err := export.ParseSelection(c.Query("table"))
	if err != nil {
		return h.fail(c, l, invalid(err))
	}

	bom, err := formInput(c, "bom", true)
	if err != nil {
		return h.fail(c, l, err)
	}
	pkp, err := formInput(c, "pkp", true)
	if err != nil {
		return h.fail(c, l, err)
	}
	stockIn, err := formInput(c, "stock", false)
	if err != nil {
		return h.fail(c, l, err)
	}

	var overrides map[string]string
	if form, err := c.MultipartForm(); err == nil {
		if overrides, err = ParseOverrides(form.Value["override"]); err != nil {
			return h.fail(c, l, err)
		}
	}

	req := Request{
		BOM:        *bom,
		PKP:        *pkp,
		Stock:      stockIn,
		Match:      h.matchFromQuery(c),
		ErrorsOnly: utils.ToBool(c.Query("errors_only")),
		Overrides:  overrides,
	}

	report, err := h.service.Run(c.Context(), req)
	if err != nil {
		return h.fail(c, l, err)
	}

	if exportFormat == "" {
		return c.JSON(report)
	}

	var buf bytes.Buffer
	if err := report.Export(&buf, exportFormat, table); err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}

	c.Attachment(report.ObjectKey("", exportFormat, table))
	c.Set(fiber.HeaderContentType, exportFormat.ContentType())
	return c.Send(buf.Bytes())
}

// HandleColumns lists the detected columns of an uploaded document.
// @Summary Detect Columns
// @Description Parses a document and returns its normalized column names so a designator or part column can be chosen.
// @Tags compare
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param file_kind formData string false "Kind (spreadsheet, delimited, freeform)"
// @Success 200 {object} map[string]interface{} "Detected columns"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 422 {object} ErrorResponse "Unreadable document"
// @Router /compare/columns [post]
func (h *Handler) HandleColumns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	in, err := formInput(c, "file", true)
	if err != nil {
		return h.fail(c, l, err)
	}

	columns, err := DetectColumns(in.Name, in.Kind, in.Data, h.matchFromQuery(c))
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(fiber.Map{
		"file":    in.Name,
		"kind":    in.Kind,
		"columns": columns,
	})
}

func (h *Handler) matchFromQuery(c *fiber.Ctx) Config {
	m := h.match
	if v := c.Query("strict"); v != "" {
		m.Strict = utils.ToBool(v)
	}
	if v := c.Query("explode"); v != "" {
		m.Explode = v
	}
	if v := c.Query("reject_hyphen"); v != "" {
		m.RejectHyphen = utils.ToBool(v)
	}
	if v := c.Query("designator_column"); v != "" {
		m.DesignatorColumn = v
	}
	if v := c.Query("part_column"); v != "" {
		m.PartColumn = v
	}
	return m
}

// fail maps err to a status code and a user-facing message.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	body := ErrorResponse{Error: tokenizer.UserMessage(err)}

	var decodeErr *tokenizer.DecodeError
	var columnErr *tokenizer.MissingColumnError
	var headerErr *tokenizer.HeaderNotFoundError

	switch {
	case errors.As(err, &columnErr):
		status = fiber.StatusUnprocessableEntity
		body.Columns = columnErr.Columns
	case errors.As(err, &decodeErr), errors.As(err, &headerErr):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrMissingInput), errors.Is(err, ErrInvalidRequest):
		status = fiber.StatusBadRequest
	}

	if status == fiber.StatusInternalServerError {
		l.Error("Compare request failed", zap.Error(err))
	} else {
		l.Info("Compare request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(body)
}

// formInput reads an uploaded file. A missing optional file yields nil.
func formInput(c *fiber.Ctx, field string, required bool) (*Input, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if required {
			return nil, fmt.Errorf("%w: missing %q file", ErrMissingInput, field)
		}
		return nil, nil
	}

	data, err := readFormFile(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q upload: %w", field, err)
	}

	kind := tokenizer.KindFromName(fh.Filename)
	if v := c.FormValue(field + "_kind"); v != "" {
		parsed, ok := tokenizer.ParseKind(v)
		if !ok {
			return nil, fmt.Errorf("%w: unknown kind %q for %s", ErrInvalidRequest, v, field)
		}
		kind = parsed
	}

	return &Input{Name: fh.Filename, Kind: kind, Data: data}, nil
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
