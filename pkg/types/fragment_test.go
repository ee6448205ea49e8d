package types

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentFilterEmpty(t *testing.T) {
	assert.True(t, FragmentFilter{}.Empty())
	assert.False(t, FragmentFilter{FAQID: "1"}.Empty())
}

func TestFragmentFilterApply(t *testing.T) {
	query := sq.Select("id").From("fragments")
	FragmentFilter{Source: "prospectus.pdf", DocumentID: "doc-1"}.Apply(&query)

	sql, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "source = ?")
	assert.Contains(t, sql, "document_id = ?")
	assert.NotContains(t, sql, "faq_id")
	assert.Equal(t, []interface{}{"prospectus.pdf", "doc-1"}, args)
}

func TestFragmentFilterApplyDelete(t *testing.T) {
	query := sq.Delete("fragments")
	FragmentFilter{FAQID: "faq-9"}.ApplyDelete(&query)

	sql, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "faq_id = ?")
	assert.Equal(t, []interface{}{"faq-9"}, args)
}
