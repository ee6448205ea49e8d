package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Code(New("trace", "message", nil)))
	assert.Equal(t, http.StatusBadRequest, Code(New("trace", "message", nil).Code(http.StatusBadRequest)))
	assert.Equal(t, http.StatusInternalServerError, Code(fmt.Errorf("plain failure")))
}

func TestWrapKeepsCode(t *testing.T) {
	inner := New("inner", "message", nil).Code(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, Code(Wrap(inner, "outer", "message")))
}
