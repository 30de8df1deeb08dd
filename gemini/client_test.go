package gemini_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanawatp/newslingo"
	"github.com/tanawatp/newslingo/gemini"
)

func TestClient_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	client := gemini.NewClient(nil) // nil genai client ok: input checks run first

	_, err := client.CleanArticle(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, newslingo.EINVALID, newslingo.ErrorCode(err))

	_, err = client.Summarize(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, newslingo.EINVALID, newslingo.ErrorCode(err))

	_, _, err = client.ExtractVocabulary(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, newslingo.EINVALID, newslingo.ErrorCode(err))
}

func TestParseVocabulary(t *testing.T) {
	t.Parallel()

	validPayload := func(t *testing.T) string {
		t.Helper()
		entries := []newslingo.VocabEntry{
			{Term: "economy", Translation: "เศรษฐกิจ", Example: "The economy grew faster than expected."},
			{Term: "policy", Translation: "นโยบาย", Example: "The new policy takes effect next month."},
			{Term: "election", Translation: "การเลือกตั้ง", Example: "The election will be held in May."},
			{Term: "negotiate", Translation: "เจรจา", Example: "Both sides agreed to negotiate."},
			{Term: "drought", Translation: "ภัยแล้ง", Example: "The drought damaged this year's harvest."},
		}
		payload, err := json.Marshal(entries)
		require.NoError(t, err)
		return string(payload)
	}

	t.Run("parses five entries preserving order", func(t *testing.T) {
		t.Parallel()

		entries, err := gemini.ParseVocabulary(validPayload(t))

		require.NoError(t, err)
		require.Len(t, entries, newslingo.VocabCount)
		assert.Equal(t, "economy", entries[0].Term)
		assert.Equal(t, "ภัยแล้ง", entries[4].Translation)
		for _, e := range entries {
			assert.NotEmpty(t, e.Term)
			assert.NotEmpty(t, e.Translation)
			assert.NotEmpty(t, e.Example)
		}
	})

	t.Run("uses the structured-output field names", func(t *testing.T) {
		t.Parallel()

		payload := `[
			{"English_Word":"w1","Thai_Translation":"t1","Example_Sentence":"s1"},
			{"English_Word":"w2","Thai_Translation":"t2","Example_Sentence":"s2"},
			{"English_Word":"w3","Thai_Translation":"t3","Example_Sentence":"s3"},
			{"English_Word":"w4","Thai_Translation":"t4","Example_Sentence":"s4"},
			{"English_Word":"w5","Thai_Translation":"t5","Example_Sentence":"s5"}
		]`

		entries, err := gemini.ParseVocabulary(payload)

		require.NoError(t, err)
		assert.Equal(t, "w1", entries[0].Term)
		assert.Equal(t, "t1", entries[0].Translation)
		assert.Equal(t, "s1", entries[0].Example)
	})

	t.Run("invalid JSON is EMALFORMED", func(t *testing.T) {
		t.Parallel()

		entries, err := gemini.ParseVocabulary("not json at all")

		require.Error(t, err)
		assert.Equal(t, newslingo.EMALFORMED, newslingo.ErrorCode(err))
		assert.Nil(t, entries)
	})

	t.Run("wrong entry count is EMALFORMED", func(t *testing.T) {
		t.Parallel()

		payload := `[{"English_Word":"w","Thai_Translation":"t","Example_Sentence":"s"}]`

		entries, err := gemini.ParseVocabulary(payload)

		require.Error(t, err)
		assert.Equal(t, newslingo.EMALFORMED, newslingo.ErrorCode(err))
		assert.Nil(t, entries)
	})

	t.Run("empty field is EMALFORMED with no partial rows", func(t *testing.T) {
		t.Parallel()

		payload := `[
			{"English_Word":"w1","Thai_Translation":"t1","Example_Sentence":"s1"},
			{"English_Word":"w2","Thai_Translation":"","Example_Sentence":"s2"},
			{"English_Word":"w3","Thai_Translation":"t3","Example_Sentence":"s3"},
			{"English_Word":"w4","Thai_Translation":"t4","Example_Sentence":"s4"},
			{"English_Word":"w5","Thai_Translation":"t5","Example_Sentence":"s5"}
		]`

		entries, err := gemini.ParseVocabulary(payload)

		require.Error(t, err)
		assert.Equal(t, newslingo.EMALFORMED, newslingo.ErrorCode(err))
		assert.Nil(t, entries)
	})
}
