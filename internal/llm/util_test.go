package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"full_name\": \"Jane Doe\"}\n```"
	assert.Equal(t, `{"full_name": "Jane Doe"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(`  {"a": 1}  `))
}

func TestSplitList_CapsAndTrims(t *testing.T) {
	items := SplitList("Go, Python , SQL,, Docker, Kubernetes, Terraform, Bash", ",", 6)
	assert.Equal(t, []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "Terraform"}, items)
}

func TestSplitList_StripsQuotes(t *testing.T) {
	items := SplitList(`"Backend Engineer"|'Platform Engineer'`, "|", 3)
	assert.Equal(t, []string{"Backend Engineer", "Platform Engineer"}, items)
}

func TestSplitList_Empty(t *testing.T) {
	assert.Empty(t, SplitList("", ",", 5))
}
