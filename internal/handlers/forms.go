package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/watertight-recruitment/recruitment-backend/internal/dtos"
	"github.com/watertight-recruitment/recruitment-backend/internal/validation"
)

const maxFormMemory = 1 << 20

// postedForm parses a urlencoded or multipart body, merged with the query string.
func postedForm(c *gin.Context) (*validation.Form, error) {
	err := c.Request.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	// net/http leaves DELETE bodies alone.
	if c.Request.Method == http.MethodDelete && c.ContentType() == binding.MIMEPOSTForm {
		if err := mergeBody(c, c.Request.Form); err != nil {
			return nil, err
		}
	}
	return validation.NewForm(c.Request.Form), nil
}

func mergeBody(c *gin.Context, into url.Values) error {
	if c.Request.Body == nil {
		return nil
	}
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxFormMemory))
	if err != nil {
		return err
	}
	body, err := url.ParseQuery(string(raw))
	if err != nil {
		return err
	}
	for k, vs := range body {
		into[k] = append(into[k], vs...)
	}
	return nil
}

func queryForm(c *gin.Context) *validation.Form {
	return validation.NewForm(c.Request.URL.Query())
}

// rejectForm answers 400 with every recorded problem.
func rejectForm(c *gin.Context, form *validation.Form) {
	fields := make(map[string]string)
	for _, e := range form.Errors() {
		fields[e.Key] = e.Message()
	}
	c.JSON(http.StatusBadRequest, dtos.ValidationErrorResponse{
		Errors: form.Messages(),
		Fields: fields,
	})
}

func badBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
}
