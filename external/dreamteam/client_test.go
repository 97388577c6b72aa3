package dreamteam

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/bonus-tracker/internal/domain/bonus"
	"github.com/riskibarqy/bonus-tracker/internal/domain/gamemode"
	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
	"github.com/riskibarqy/bonus-tracker/internal/usecase"
)

const teamPayloadJSON = `{
	"result": true,
	"error": null,
	"data": {
		"user": {"id": 1001, "email": "manager@example.com", "fullName": "Test Manager", "avatarUrl": "avatar.png"},
		"userTeam": {
			"id": 7524324,
			"userId": 1001,
			"name": "Test FC",
			"creatorName": "Test Creator",
			"points": 1074,
			"formation": "4-4-2",
			"bonusesData": [
				{"bonusId": 2, "usageRoundId": 125, "usageDate": "2025-12-19T14:04:09.7324083+02:00"},
				{"bonusId": 3, "usageRoundId": 131, "usageDate": "2026-01-30T14:18:03.8782561+02:00"}
			]
		}
	}
}`

func writeLoginSuccess(t *testing.T, w http.ResponseWriter, logins *atomic.Int32) {
	t.Helper()

	n := logins.Add(1)
	http.SetCookie(w, &http.Cookie{Name: ".ASPXAUTH", Value: fmt.Sprintf("ticket-%d", n)})
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"result":true,"error":null}`))
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Email:      "manager@example.com",
		Password:   "secret-password",
		Logger:     logging.NewNop(),
	})
}

func TestClientFetchUserTeam_LogsInOnceAndReusesSession(t *testing.T) {
	t.Parallel()

	var logins, teamCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected login method: %s", r.Method)
		}
		var req map[string]string
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login body: %v", err)
		}
		if req["email"] != "manager@example.com" || req["password"] != "secret-password" {
			t.Fatalf("unexpected credentials: %v", req)
		}
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		teamCalls.Add(1)
		query := r.URL.Query()
		if got := query.Get("seasonId"); got != "6" {
			t.Fatalf("unexpected seasonId: %s", got)
		}
		if got := query.Get("userId"); got != "1001" {
			t.Fatalf("unexpected userId: %s", got)
		}
		cookie, err := r.Cookie(".ASPXAUTH")
		if err != nil || cookie.Value != "ticket-1" {
			t.Fatalf("expected session cookie ticket-1, got %v (%v)", cookie, err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(teamPayloadJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	for i := 0; i < 2; i++ {
		team, err := client.FetchUserTeam(context.Background(), gamemode.DreamLeague, 1001)
		if err != nil {
			t.Fatalf("fetch user team failed: %v", err)
		}
		if team.UserID != 1001 {
			t.Fatalf("unexpected user id: %d", team.UserID)
		}
		if team.TeamName != "Test FC" {
			t.Fatalf("unexpected team name: %s", team.TeamName)
		}
		if team.CreatorName != "Test Creator" {
			t.Fatalf("unexpected creator name: %s", team.CreatorName)
		}
		if team.TotalPoints != 1074 {
			t.Fatalf("unexpected total points: %d", team.TotalPoints)
		}
		if len(team.Bonuses) != 2 {
			t.Fatalf("expected two bonus usages, got %d", len(team.Bonuses))
		}
		if team.Bonuses[0].BonusID != bonus.FifteenSubs || team.Bonuses[0].RoundID != 125 {
			t.Fatalf("unexpected first bonus usage: %+v", team.Bonuses[0])
		}
	}

	if logins.Load() != 1 {
		t.Fatalf("expected a single login, got %d", logins.Load())
	}
	if teamCalls.Load() != 2 {
		t.Fatalf("expected two team calls, got %d", teamCalls.Load())
	}
}

func TestClientFetchUserTeam_RefreshesExpiredSessionOnce(t *testing.T) {
	t.Parallel()

	var logins, teamCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		teamCalls.Add(1)
		if strings.Contains(r.Header.Get("Cookie"), "ticket-1") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(teamPayloadJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	team, err := client.FetchUserTeam(context.Background(), gamemode.DreamLeague, 1001)
	if err != nil {
		t.Fatalf("fetch user team failed: %v", err)
	}
	if team.TeamName != "Test FC" {
		t.Fatalf("unexpected team name: %s", team.TeamName)
	}

	if logins.Load() != 2 {
		t.Fatalf("expected two logins around the expired session, got %d", logins.Load())
	}
	if teamCalls.Load() != 2 {
		t.Fatalf("expected two team calls, got %d", teamCalls.Load())
	}
}

func TestClientFetchUserTeam_SecondRejectionIsUnauthorized(t *testing.T) {
	t.Parallel()

	var logins, teamCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		teamCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.FetchUserTeam(context.Background(), gamemode.DreamLeague, 1001)
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if logins.Load() != 2 {
		t.Fatalf("expected exactly two login attempts, got %d", logins.Load())
	}
	if teamCalls.Load() != 2 {
		t.Fatalf("expected exactly two team calls, got %d", teamCalls.Load())
	}
}

func TestClientAuthenticate_RejectedCredentials(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":false,"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	err := client.Authenticate(context.Background())
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if client.Status().Authenticated {
		t.Fatal("expected unauthenticated status after rejected login")
	}
}

func TestClientAuthenticate_NonJSONLoginResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	if err := client.Authenticate(context.Background()); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientAuthenticate_LoginStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	if err := client.Authenticate(context.Background()); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientFetchUserTeam_MissingTeamMapsToNotFound(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":false,"error":"User not found","data":null}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.FetchUserTeam(context.Background(), gamemode.DreamLeague, 9999)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientFetchUserTeam_NotFoundStatus(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.FetchUserTeam(context.Background(), gamemode.DreamLeague, 1001)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientFetchUserTeam_ServerErrorMapsToDependencyUnavailable(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.FetchUserTeam(context.Background(), gamemode.DreamLeague, 1001)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("server error must not map to ErrUnauthorized: %v", err)
	}
	if logins.Load() != 1 {
		t.Fatalf("expected a single login, got %d", logins.Load())
	}
}

func TestClientFetchUserTeam_ContextDeadlineMapsToDependencyUnavailable(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(250 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(teamPayloadJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchUserTeam(ctx, gamemode.DreamLeague, 1001)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestClientFetchLeague_MainTableSendsNullLeagueID(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/CustomLeagues/GetLeagueData", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if got := query.Get("seasonId"); got != "8" {
			t.Fatalf("unexpected seasonId: %s", got)
		}
		if got := query.Get("leagueId"); got != "null" {
			t.Fatalf("unexpected leagueId: %s", got)
		}
		if got := query.Get("teamId"); got != "null" {
			t.Fatalf("unexpected teamId: %s", got)
		}
		if got := query.Get("isPerRound"); got != "false" {
			t.Fatalf("unexpected isPerRound: %s", got)
		}
		if got := query.Get("pageIndex"); got != "0" {
			t.Fatalf("unexpected pageIndex: %s", got)
		}
		if !query.Has("searchText") {
			t.Fatal("expected searchText parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": true,
			"data": {
				"leagueName": "",
				"teams": [
					{"userId": 2001, "name": "Alpha FC", "userName": "Test User A", "totalScore": 1026, "roundScore": 49, "position": 1063},
					{"userId": 1001, "name": "Test FC", "userName": "Test Creator", "totalScore": 1074, "roundScore": 71, "position": 252}
				]
			}
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	league, err := client.FetchLeague(context.Background(), gamemode.ChampionsLeague, 0)
	if err != nil {
		t.Fatalf("fetch league failed: %v", err)
	}
	if league.LeagueID != 0 {
		t.Fatalf("expected league id 0 for the main table, got %d", league.LeagueID)
	}
	if len(league.Members) != 2 {
		t.Fatalf("expected two members, got %d", len(league.Members))
	}
	if league.Members[0].UserID != 2001 || league.Members[0].TeamName != "Alpha FC" {
		t.Fatalf("unexpected first member: %+v", league.Members[0])
	}
	if league.Members[1].OwnerName != "Test Creator" || league.Members[1].TotalScore != 1074 {
		t.Fatalf("unexpected second member: %+v", league.Members[1])
	}
}

func TestClientFetchLeague_CustomLeaguePayload(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/CustomLeagues/GetLeagueData", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("leagueId"); got != "25586" {
			t.Fatalf("unexpected leagueId: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": true,
			"data": {
				"leagueName": "Fantasy 25/26",
				"customLeague": {"id": 25586, "seasonId": 6, "name": "Fantasy 25/26"},
				"teams": [
					{"userId": 1001, "name": "Test FC", "userName": "Test Creator", "totalScore": 1074, "roundScore": 71, "position": 252}
				]
			}
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	league, err := client.FetchLeague(context.Background(), gamemode.DreamLeague, 25586)
	if err != nil {
		t.Fatalf("fetch league failed: %v", err)
	}
	if league.LeagueID != 25586 || league.SeasonID != 6 {
		t.Fatalf("unexpected league identity: %+v", league)
	}
	if league.LeagueName != "Fantasy 25/26" {
		t.Fatalf("unexpected league name: %s", league.LeagueName)
	}
}

func TestClientFetchLeague_MissingLeagueMapsToNotFound(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/CustomLeagues/GetLeagueData", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":false,"error":"League not found","data":null}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.FetchLeague(context.Background(), gamemode.DreamLeague, 404404)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientConcurrentSessionExpiry_SingleRelogin(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Cookie"), "ticket-1") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(teamPayloadJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	if err := client.Authenticate(context.Background()); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	const fetchers = 4
	errs := make(chan error, fetchers)
	var wg sync.WaitGroup
	for i := 0; i < fetchers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := client.FetchUserTeam(context.Background(), gamemode.DreamLeague, userID)
			errs <- err
		}(int64(1001 + i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent fetch failed: %v", err)
		}
	}

	if logins.Load() != 2 {
		t.Fatalf("expected one login plus one shared refresh, got %d", logins.Load())
	}
}

func TestClientSwapCredentials_RestoresPreviousOnFailure(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login body: %v", err)
		}
		if req["email"] != "manager@example.com" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":false,"error":"Invalid credentials"}`))
			return
		}
		writeLoginSuccess(t, w, &logins)
	})
	mux.HandleFunc("/api/UserTeam/GetUserAndTeam", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(teamPayloadJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	if err := client.Authenticate(context.Background()); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	err := client.SwapCredentials(context.Background(), "intruder@example.com", "nope")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	status := client.Status()
	if !status.Authenticated {
		t.Fatal("expected previous session to survive a failed swap")
	}
	if status.Email != "m***@example.com" {
		t.Fatalf("unexpected status email: %s", status.Email)
	}

	if _, err := client.FetchUserTeam(context.Background(), gamemode.DreamLeague, 1001); err != nil {
		t.Fatalf("fetch with restored session failed: %v", err)
	}
	if logins.Load() != 1 {
		t.Fatalf("expected the original login only, got %d", logins.Load())
	}
}

func TestClientResetCredentials_FallsBackToConfiguredLogin(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Account/Login", func(w http.ResponseWriter, r *http.Request) {
		writeLoginSuccess(t, w, &logins)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	if err := client.SwapCredentials(context.Background(), "other@example.com", "other-password"); err != nil {
		t.Fatalf("swap credentials failed: %v", err)
	}
	if got := client.Status().Email; got != "o***@example.com" {
		t.Fatalf("unexpected email after swap: %s", got)
	}

	if err := client.ResetCredentials(context.Background()); err != nil {
		t.Fatalf("reset credentials failed: %v", err)
	}

	status := client.Status()
	if !status.Authenticated {
		t.Fatal("expected authenticated status after reset")
	}
	if status.Email != "m***@example.com" {
		t.Fatalf("unexpected email after reset: %s", status.Email)
	}
	if logins.Load() != 2 {
		t.Fatalf("expected swap and reset logins, got %d", logins.Load())
	}
}
