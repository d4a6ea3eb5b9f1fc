package goquery_test

import (
	"testing"

	sitegoquery "github.com/fwojciec/siteinfo/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailScanner_ScanEmails(t *testing.T) {
	t.Parallel()

	scanner := sitegoquery.NewEmailScanner()

	t.Run("finds addresses in plain text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Reach us at sales@example.com or call.</p></body></html>`

		emails, err := scanner.ScanEmails(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"sales@example.com"}, emails)
	})

	t.Run("finds mailto addresses hidden behind link text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="mailto:info@example.com">Email us</a></body></html>`

		emails, err := scanner.ScanEmails(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"info@example.com"}, emails)
	})

	t.Run("strips query component from mailto targets", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="mailto:info@example.com?subject=hi">Email us</a>
			<p>reach us at sales@example.com</p>
		</body></html>`

		emails, err := scanner.ScanEmails(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"info@example.com", "sales@example.com"}, emails)
	})

	t.Run("rejects mailto targets that are not a full address", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="mailto:say hello to info@example.com">Email</a></body></html>`

		emails, err := scanner.ScanEmails(html)
		require.NoError(t, err)
		assert.Empty(t, emails)
	})

	t.Run("deduplicates across passes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="mailto:info@example.com">info@example.com</a>
			<p>Or write to info@example.com directly.</p>
		</body></html>`

		emails, err := scanner.ScanEmails(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"info@example.com"}, emails)
	})

	t.Run("does not include trailing punctuation", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Write to hello@example.co.uk.</p></body></html>`

		emails, err := scanner.ScanEmails(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"hello@example.co.uk"}, emails)
	})

	t.Run("returns empty set when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>No addresses here, not even an @ of note.</p></body></html>`

		emails, err := scanner.ScanEmails(html)
		require.NoError(t, err)
		assert.Empty(t, emails)
	})
}
