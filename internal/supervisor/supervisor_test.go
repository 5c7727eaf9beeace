package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanreyes/winregsearch/internal/registry"
	"github.com/evanreyes/winregsearch/internal/registry/mockprovider"
	"github.com/evanreyes/winregsearch/internal/session"
)

func TestSupervisorRunsOnStartToken(t *testing.T) {
	p := mockprovider.New()
	p.SetValues(registry.LocalMachine, "", []registry.ValueRecord{
		{Name: "Name", Kind: registry.KindSZ, Data: []byte("widget")},
	})

	s := session.New()
	s.SearchTerms.Update(session.EditorAdd, "", "widget")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		Run(ctx, s, p)
		close(done)
	}()

	s.ToggleRun(time.Now())

	require.Eventually(t, func() bool {
		return s.Results.ResultCount() > 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.Contains(t, s.Results.Results(), `HKEY_LOCAL_MACHINE\Name = "widget" (REG_SZ)`)
	require.Eventually(t, func() bool {
		return !s.Run.Running()
	}, 2*time.Second, 10*time.Millisecond)

	s.RequestQuit()
	cancel()
	<-done
}

func TestSupervisorStopsOnF5ToggleWhileRunning(t *testing.T) {
	p := mockprovider.New()
	for i := 0; i < 20; i++ {
		p.AddKey(registry.LocalMachine, string(rune('a'+i)))
	}

	s := session.New()
	s.SearchTerms.Update(session.EditorAdd, "", "never-matches")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		Run(ctx, s, p)
		close(done)
	}()

	s.ToggleRun(time.Now())
	require.Eventually(t, func() bool { return s.Run.Running() }, time.Second, 5*time.Millisecond)

	s.ToggleRun(time.Now()) // requests stop
	require.Eventually(t, func() bool { return !s.Run.Running() }, 2*time.Second, 10*time.Millisecond)

	s.RequestQuit()
	cancel()
	<-done
}
