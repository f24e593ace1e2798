package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequest_Defaults(t *testing.T) {
	p := PaginatedRequest{}
	assert.Equal(t, 10, p.Limit())
	assert.Equal(t, 0, p.Offset())
}

func TestPaginatedRequest_Offset(t *testing.T) {
	p := PaginatedRequest{Page: 3, PerPage: 20}
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())
}

func TestPaginatedRequest_CapsPerPage(t *testing.T) {
	p := PaginatedRequest{Page: 1, PerPage: 500}
	assert.Equal(t, 100, p.Limit())
}
