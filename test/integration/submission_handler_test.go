//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionJSON struct {
	ID        uint `json:"id"`
	FormID    uint `json:"formId"`
	Responses []struct {
		FieldLabel string `json:"fieldLabel"`
		Answer     string `json:"answer"`
	} `json:"responses"`
}

func responses(pairs ...[2]string) map[string]interface{} {
	list := make([]map[string]string, 0, len(pairs))
	for _, p := range pairs {
		list = append(list, map[string]string{"fieldLabel": p[0], "answer": p[1]})
	}
	return map[string]interface{}{"responses": list}
}

func TestSubmissionHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	owner := NewHTTPClient(ctx.Router, ctx.OwnerToken)
	rival := NewHTTPClient(ctx.Router, ctx.RivalToken)
	anon := NewHTTPClient(ctx.Router, "")

	newContactForm := func(t *testing.T, title string) formJSON {
		form := createForm(t, owner, title)
		form = addField(t, owner, form.ID, map[string]interface{}{"type": "text", "label": "Name", "required": true})
		form = addField(t, owner, form.ID, map[string]interface{}{"type": "email", "label": "Email", "required": true})
		form = addField(t, owner, form.ID, map[string]interface{}{"type": "number", "label": "Rating", "min": 1, "max": 5})
		return form
	}

	t.Run("CreateSubmission - PublicSuccess", func(t *testing.T) {
		form := newContactForm(t, "Contact Success")

		resp, err := anon.POST(fmt.Sprintf("/api/forms/%d/submit", form.ID), responses(
			[2]string{"Name", "Alice"},
			[2]string{"Email", "alice@test.com"},
			[2]string{"Rating", "4"},
		))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

		var submission submissionJSON
		require.NoError(t, resp.DecodeJSON(&submission))
		assert.Equal(t, form.ID, submission.FormID)
		assert.Len(t, submission.Responses, 3)
	})

	t.Run("CreateSubmission - ValidationErrors", func(t *testing.T) {
		form := newContactForm(t, "Contact Invalid")

		resp, err := anon.POST(fmt.Sprintf("/api/forms/%d/submit", form.ID), responses(
			[2]string{"Email", "not-an-email"},
			[2]string{"Rating", "9"},
		))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var result struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, resp.DecodeJSON(&result))
		assert.Equal(t, "This field is required.", result.Fields["Name"])
		assert.Equal(t, "Please enter a valid email address.", result.Fields["Email"])
		assert.Equal(t, "Maximum value is 5.", result.Fields["Rating"])

		// nothing was stored
		listResp, err := owner.GET(fmt.Sprintf("/api/forms/%d/submissions", form.ID))
		require.NoError(t, err)
		var stored []submissionJSON
		require.NoError(t, listResp.DecodeJSON(&stored))
		assert.Empty(t, stored)
	})

	t.Run("CreateSubmission - FormNotFound", func(t *testing.T) {
		resp, err := anon.POST("/api/forms/999999/submit", responses([2]string{"Name", "Alice"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("GetFormSubmissions - OwnerOnly", func(t *testing.T) {
		form := newContactForm(t, "Contact Listing")

		for _, name := range []string{"Alice", "Bob"} {
			resp, err := anon.POST(fmt.Sprintf("/api/forms/%d/submit", form.ID), responses(
				[2]string{"Name", name},
				[2]string{"Email", strings.ToLower(name) + "@test.com"},
			))
			require.NoError(t, err)
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		}

		resp, err := owner.GET(fmt.Sprintf("/api/forms/%d/submissions", form.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var stored []submissionJSON
		require.NoError(t, resp.DecodeJSON(&stored))
		assert.Len(t, stored, 2)

		rivalResp, err := rival.GET(fmt.Sprintf("/api/forms/%d/submissions", form.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rivalResp.StatusCode)

		anonResp, err := anon.GET(fmt.Sprintf("/api/forms/%d/submissions", form.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, anonResp.StatusCode)
	})

	t.Run("ExportCSV - Success", func(t *testing.T) {
		form := newContactForm(t, "Contact Export")

		resp, err := anon.POST(fmt.Sprintf("/api/forms/%d/submit", form.ID), responses(
			[2]string{"Name", "Alice"},
			[2]string{"Email", "alice@test.com"},
			[2]string{"Rating", "5"},
		))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		csvResp, err := owner.GET(fmt.Sprintf("/api/forms/%d/submissions/export", form.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, csvResp.StatusCode)
		assert.Contains(t, csvResp.Headers.Get("Content-Type"), "text/csv")
		assert.Contains(t, csvResp.Headers.Get("Content-Disposition"), "Contact Export_submissions.csv")

		lines := strings.Split(strings.TrimSpace(string(csvResp.Body)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Name,Email,Rating", lines[0])
		assert.Equal(t, "Alice,alice@test.com,5", lines[1])
	})

	t.Run("ExportCSV - Forbidden", func(t *testing.T) {
		form := newContactForm(t, "Contact Export Locked")

		resp, err := rival.GET(fmt.Sprintf("/api/forms/%d/submissions/export", form.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("DeleteForm - CascadesSubmissions", func(t *testing.T) {
		form := newContactForm(t, "Contact Cascade")

		resp, err := anon.POST(fmt.Sprintf("/api/forms/%d/submit", form.ID), responses(
			[2]string{"Name", "Alice"},
			[2]string{"Email", "alice@test.com"},
		))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		delResp, err := owner.DELETE(fmt.Sprintf("/api/forms/%d", form.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, delResp.StatusCode)

		listResp, err := owner.GET(fmt.Sprintf("/api/forms/%d/submissions", form.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, listResp.StatusCode)
	})
}

// TestContactUsFlow walks the full lifecycle: register, login, build a form,
// collect a public submission, review and export it.
func TestContactUsFlow(t *testing.T) {
	ctx := GetTestContext()
	anon := NewHTTPClient(ctx.Router, "")

	// register + login
	resp, err := anon.POST("/api/auth/register", map[string]interface{}{
		"username": "flow-user",
		"email":    "flow@test.com",
		"password": "password123",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = anon.POST("/api/auth/login", map[string]interface{}{
		"email":    "flow@test.com",
		"password": "password123",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, resp.DecodeJSON(&login))
	require.NotEmpty(t, login.AccessToken)

	builder := NewHTTPClient(ctx.Router, login.AccessToken)

	// build the form
	form := createForm(t, builder, "Contact Us")
	form = addField(t, builder, form.ID, map[string]interface{}{"type": "text", "label": "First Name", "required": true, "placeholder": "e.g., John"})
	form = addField(t, builder, form.ID, map[string]interface{}{"type": "email", "label": "Email Address", "required": true})
	form = addField(t, builder, form.ID, map[string]interface{}{"type": "textarea", "label": "Message"})

	// restyle it
	resp, err = builder.PUT(fmt.Sprintf("/api/forms/%d", form.ID), map[string]interface{}{
		"styles": map[string]string{
			"backgroundColor": "#000000",
			"textColor":       "#EEEEEE",
			"buttonColor":     "#FF5500",
		},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// a visitor renders and submits it
	resp, err = anon.GET(fmt.Sprintf("/api/forms/%d", form.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var public formJSON
	require.NoError(t, resp.DecodeJSON(&public))
	assert.Equal(t, "#000000", public.Styles["backgroundColor"])
	require.Len(t, public.Fields, 3)

	resp, err = anon.POST(fmt.Sprintf("/api/forms/%d/submit", form.ID), responses(
		[2]string{"First Name", "John"},
		[2]string{"Email Address", "john.doe@example.com"},
		[2]string{"Message", "Hello there"},
	))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// the builder reviews and exports
	resp, err = builder.GET(fmt.Sprintf("/api/forms/%d/submissions", form.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored []submissionJSON
	require.NoError(t, resp.DecodeJSON(&stored))
	require.Len(t, stored, 1)

	resp, err = builder.GET(fmt.Sprintf("/api/forms/%d/submissions/export", form.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "First Name,Email Address,Message")
	assert.Contains(t, string(resp.Body), "John,john.doe@example.com,Hello there")
}
