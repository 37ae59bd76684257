package emby

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPersons(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emby/Persons", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "25", q.Get("Limit"))
		assert.Equal(t, "50", q.Get("StartIndex"))
		assert.Equal(t, "smith", q.Get("SearchTerm"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Items":[
			{"Id":"p1","Name":"Alex Smith","Type":"Actor","ImageTags":{"Primary":"t1"}},
			{"Name":"No id, dropped"},
			{"Id":"p2","Name":"Sam Smith","Type":"Director"}
		],"TotalRecordCount":3}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	persons := client.ListPersons(context.Background(), 25, 50, "smith")

	require.Len(t, persons, 2)
	assert.Equal(t, "Alex Smith", persons[0].Name)
	assert.Equal(t, "t1", persons[0].PrimaryImageTag)
	assert.Equal(t, "Director", persons[1].Type)
}

func TestGetPersonDetailMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/emby/Users":
			_, _ = w.Write([]byte(`[{"Id":"u1"}]`))
		case "/emby/Users/u1/Items/p1":
			_, _ = w.Write([]byte(`{
				"Id": "p1",
				"Name": "Alex Smith",
				"Type": "Person",
				"Overview": "Born somewhere, acted in things.",
				"PremiereDate": "1970-02-03T00:00:00.0000000Z",
				"ProductionLocations": ["Lisbon, Portugal", "Paris, France"],
				"ImageTags": {"Primary": "t1"}
			}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	detail := client.GetPerson(context.Background(), "p1")

	require.NotNil(t, detail)
	assert.Equal(t, "Alex Smith", detail.Name)
	assert.Equal(t, "Born somewhere, acted in things.", detail.Biography)
	assert.Equal(t, "1970-02-03T00:00:00.0000000Z", detail.BirthDate)
	assert.Equal(t, "Lisbon, Portugal", detail.BirthPlace)
	assert.Equal(t, "t1", detail.PrimaryImageTag)
}

func TestGetPersonAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	assert.Nil(t, client.GetPerson(context.Background(), "p1"))
	assert.Nil(t, client.GetPerson(context.Background(), ""))
}

func TestPersonCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emby/Items", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "p1", q.Get("PersonIds"))
		assert.Equal(t, "PremiereDate", q.Get("SortBy"))
		assert.Equal(t, "Descending", q.Get("SortOrder"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Items":[{"Id":"m1","Name":"Credit","Type":"Movie"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	credits := client.PersonCredits(context.Background(), "p1", 10)

	require.Len(t, credits, 1)
	assert.Equal(t, "Credit", credits[0].Name)

	assert.Empty(t, client.PersonCredits(context.Background(), "", 10))
}
