package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/sorcerer/internal/program"
	"github.com/2beens/sorcerer/internal/tracker"
	"github.com/2beens/sorcerer/internal/workout"
)

func (s *IntegrationTestSuite) post(path string, headers map[string]string) *http.Response {
	req, err := http.NewRequestWithContext(
		context.Background(),
		"POST", serverEndpoint+path,
		nil,
	)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *IntegrationTestSuite) getBody(path string) (int, string) {
	resp, err := s.httpClient.Get(serverEndpoint + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(respBytes)
}

func (s *IntegrationTestSuite) toggle(id string) workout.ToggleResponse {
	resp := s.post(fmt.Sprintf("/exercises/%s/toggle", id), map[string]string{"Accept": "application/json"})
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var toggleResp workout.ToggleResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&toggleResp))
	return toggleResp
}

func (s *IntegrationTestSuite) state() tracker.Snapshot {
	status, body := s.getBody("/api/state")
	s.Require().Equal(http.StatusOK, status)

	var snapshot tracker.Snapshot
	s.Require().NoError(json.Unmarshal([]byte(body), &snapshot))
	return snapshot
}

func (s *IntegrationTestSuite) TestVersion() {
	status, body := s.getBody("/version")
	s.Equal(http.StatusOK, status)
	s.Equal("test-version-info", body)
}

func (s *IntegrationTestSuite) TestWorkoutDay() {
	exs, err := program.Displayed(program.Thursday)
	s.Require().NoError(err)

	resp := s.post("/day/thu", nil)
	s.Require().NoError(resp.Body.Close())
	s.Equal(http.StatusSeeOther, resp.StatusCode)

	var last workout.ToggleResponse
	for _, ex := range exs {
		last = s.toggle(ex.ID)
		s.True(last.Completed)
	}
	s.Equal(len(exs), last.Progress.Total)
	s.Equal(float64(100), last.Progress.Percent)
	s.True(last.Progress.AllClear)

	status, page := s.getBody("/")
	s.Equal(http.StatusOK, status)
	s.Contains(page, "ALL CLEAR")
	s.Contains(page, "Recovery started. Logged.")

	// switching day keeps thursday entries, the shared morning ritual stays done
	resp = s.post("/day/friday", nil)
	s.Require().NoError(resp.Body.Close())
	snapshot := s.state()
	s.Equal(program.Friday, snapshot.Day)
	s.Equal(2, snapshot.Progress.Done)
	s.False(snapshot.Progress.AllClear)
	s.True(snapshot.Completed["th1"])

	status, _ = s.getBody("/exercises/f1/form")
	s.Equal(http.StatusFound, status)
}

func (s *IntegrationTestSuite) TestRulesView() {
	status, body := s.getBody("/rules")
	s.Equal(http.StatusOK, status)
	s.Contains(body, "STANDING MANDATE")
	s.Equal(tracker.ViewRules, s.state().View)

	resp := s.post("/view/toggle", nil)
	s.Require().NoError(resp.Body.Close())
	s.Equal(tracker.ViewWorkout, s.state().View)

	status, body = s.getBody("/api/rules")
	s.Equal(http.StatusOK, status)
	var rules workout.RulesResponse
	s.Require().NoError(json.Unmarshal([]byte(body), &rules))
	s.Equal(program.RecoveryProtocol(), rules.Recovery)
}

func (s *IntegrationTestSuite) TestToggleRateLimit() {
	limited := false
	for i := 0; i < toggleAllowedPerMin+5; i++ {
		resp := s.post("/exercises/mr1/toggle", map[string]string{"Accept": "application/json"})
		s.Require().NoError(resp.Body.Close())
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
		s.Require().Equal(http.StatusOK, resp.StatusCode)
	}
	s.True(limited, "toggle route never got rate limited")

	// metrics server exposes the rejection
	resp, err := s.httpClient.Get(fmt.Sprintf("http://%s:%d/metrics", serverHost, metricsServerPort))
	s.Require().NoError(err)
	defer resp.Body.Close()
	metricsBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.True(strings.Contains(string(metricsBytes), "sorcerer_main_rate_limited"), "rate limited counter missing")
}
