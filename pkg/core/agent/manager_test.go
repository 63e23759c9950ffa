package agent

import "testing"

func TestManagerDefaultsToGemini(t *testing.T) {
	mgr := NewManager(Config{})
	if got := mgr.GetActiveProvider(); got != "gemini" {
		t.Errorf("expected gemini default, got %s", got)
	}
}

func TestSetGlobalProvider(t *testing.T) {
	mgr := NewManager(Config{ActiveProvider: "gemini"})

	if err := mgr.SetGlobalProvider("deepseek"); err != nil {
		t.Fatalf("SetGlobalProvider failed: %v", err)
	}
	if got := mgr.GetActiveProvider(); got != "deepseek" {
		t.Errorf("provider not switched, got %s", got)
	}

	if err := mgr.SetGlobalProvider("openai"); err == nil {
		t.Error("expected error for unregistered provider")
	}
	if got := mgr.GetActiveProvider(); got != "deepseek" {
		t.Errorf("failed switch must not change the provider, got %s", got)
	}
}

func TestGetProviderRoleOverride(t *testing.T) {
	mgr := NewManager(Config{
		ActiveProvider: "deepseek",
		Agents: map[string]AgentConfig{
			"extraction": {Provider: "gemini", Model: "gemini-2.0-flash"},
		},
	})

	if p := mgr.GetProvider("extraction"); p != mgr.providers["gemini"] {
		t.Error("role override should win over the active provider")
	}
	if p := mgr.GetProvider("other"); p != mgr.providers["deepseek"] {
		t.Error("unconfigured roles should use the active provider")
	}
}

func TestGetProviderUnknownActiveFallsBack(t *testing.T) {
	mgr := NewManager(Config{ActiveProvider: "typo"})
	if p := mgr.GetProvider("extraction"); p != mgr.providers["gemini"] {
		t.Error("unknown active provider should fall back to gemini")
	}
}

func TestAvailableProviders(t *testing.T) {
	mgr := NewManager(Config{})
	got := mgr.AvailableProviders()
	if len(got) != 2 || got[0] != "deepseek" || got[1] != "gemini" {
		t.Errorf("unexpected provider list: %v", got)
	}
}
