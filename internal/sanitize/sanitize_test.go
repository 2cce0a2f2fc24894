package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

func TestTextStripsMarkup(t *testing.T) {
	require.Equal(t, "Team Alpha", Text("<b>Team Alpha</b>"))

	scripted := Text("<script>alert(1)</script>")
	require.NotContains(t, scripted, "<")
	require.NotContains(t, scripted, "script")
	require.Equal(t, "Team", Text("javascript:Team"))
	require.Equal(t, "x", Text("onclick=x"))
	require.Equal(t, "", Text(""))
	require.Equal(t, "Plain Name", Text("  Plain Name  "))
}

func TestRecordCleansAllFields(t *testing.T) {
	rec := Record(entities.TeamRecord{
		TeamName:   "<i>Alpha</i>",
		Email:      " a@x.com ",
		Username:   "<u>alpha</u>",
		SourceFile: "one.csv",
	})
	require.Equal(t, "Alpha", rec.TeamName)
	require.Equal(t, "a@x.com", rec.Email)
	require.Equal(t, "alpha", rec.Username)
	require.Equal(t, "one.csv", rec.SourceFile)
}

func TestValidateFileContent(t *testing.T) {
	require.NoError(t, ValidateFileContent("Team Name,Email\nAlpha,a@x.com\n", 1<<20))

	err := ValidateFileContent("huge", 2)
	require.ErrorIs(t, err, entities.ErrFileTooLarge)

	for _, payload := range []string{
		"<script>alert(1)</script>",
		"JAVASCRIPT:void(0)",
		"vbscript:msgbox",
		"x onload=boom",
		"x onerror=boom",
		"eval(code)",
		"document.cookie",
		"window.location",
	} {
		err := ValidateFileContent(payload, 1<<20)
		require.ErrorIs(t, err, entities.ErrUnsafeContent, payload)
	}
}
