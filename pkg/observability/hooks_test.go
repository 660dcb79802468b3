package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// DMX hooks
	d := NoopDMXHooks{}
	d.OnChannelSet(0, 1, 255)
	d.OnChannelOverride(0, 1, 255)
	d.OnChannelRevert(0, 1)
	d.OnUnknownUniverse(9)

	// Patch hooks
	p := NoopPatchHooks{}
	p.OnNodeAdded(0)
	p.OnNodeDeleted(0, 2)
	p.OnEdgeAdded(0, 1)
	p.OnEdgeRejected(0, 5, errors.New("missing"))
	p.OnUpdate(3, time.Millisecond)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/v1/show")
	h.OnResponse(ctx, "GET", "/api/v1/show", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := DMX().(NoopDMXHooks); !ok {
		t.Error("DMX() should return NoopDMXHooks by default")
	}
	if _, ok := Patch().(NoopPatchHooks); !ok {
		t.Error("Patch() should return NoopPatchHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customDMX := &testDMXHooks{}
	SetDMXHooks(customDMX)
	if DMX() != customDMX {
		t.Error("SetDMXHooks should set custom hooks")
	}

	customPatch := &testPatchHooks{}
	SetPatchHooks(customPatch)
	if Patch() != customPatch {
		t.Error("SetPatchHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := DMX().(NoopDMXHooks); !ok {
		t.Error("Reset() should restore NoopDMXHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDMXHooks{}
	SetDMXHooks(custom)

	// Setting nil should be ignored
	SetDMXHooks(nil)

	if DMX() != custom {
		t.Error("SetDMXHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDMXHooks struct{ NoopDMXHooks }
type testPatchHooks struct{ NoopPatchHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
