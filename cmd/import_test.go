package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/listedit/internal/domain"
	m "github.com/mouse-blink/listedit/internal/model"
)

func TestImportCmd(t *testing.T) {
	t.Run("writes output", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)
		mockWorkflow.EXPECT().
			Import(domain.ImportArgs{Source: m.FilePath("page.html"), Output: m.FilePath("page.yaml")}).
			Return(nil)

		cmd := newTestRootCmd(newImportCmd())
		cmd.SetArgs([]string{"import", "page.html", "-o", "page.yaml"})

		require.NoError(t, cmd.Execute())
	})

	t.Run("propagates errors", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)
		boom := errors.New("boom")
		mockWorkflow.EXPECT().Import(domain.ImportArgs{Source: m.FilePath("page.html")}).Return(boom)

		cmd := newTestRootCmd(newImportCmd())
		cmd.SetArgs([]string{"import", "page.html"})

		require.ErrorIs(t, cmd.Execute(), boom)
	})
}
