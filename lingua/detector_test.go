package lingua_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanawatp/newslingo"
	"github.com/tanawatp/newslingo/lingua"
)

// Ensure Detector implements newslingo.LanguageDetector at compile time.
var _ newslingo.LanguageDetector = (*lingua.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	detector := lingua.NewDetector()

	t.Run("detects English article text", func(t *testing.T) {
		t.Parallel()

		language, ok := detector.Detect("The government announced new measures to support the economy after months of negotiations.")

		require.True(t, ok)
		assert.Equal(t, "English", language)
	})

	t.Run("detects Thai text", func(t *testing.T) {
		t.Parallel()

		language, ok := detector.Detect("รัฐบาลประกาศมาตรการใหม่เพื่อสนับสนุนเศรษฐกิจ")

		require.True(t, ok)
		assert.Equal(t, "Thai", language)
	})

	t.Run("empty text is not classified", func(t *testing.T) {
		t.Parallel()

		_, ok := detector.Detect("")

		assert.False(t, ok)
	})
}
