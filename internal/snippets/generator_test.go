package snippets_test

import (
	"strings"
	"testing"

	"github.com/splitpixel/splitpixel/internal/snippets"
)

func TestGenerate_HTML(t *testing.T) {
	files, err := snippets.Generate(snippets.FrameworkHTML, snippets.Config{
		ProjectID: "proj_1",
		ServerURL: "https://spx.example.com",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}

	content := files[0].Content
	if !strings.Contains(content, `src="https://spx.example.com/s/proj_1"`) {
		t.Error("expected embed tag with script URL")
	}
	if !strings.Contains(content, "data-spx-show") {
		t.Error("expected show-for example markup")
	}
	if !strings.Contains(content, "splitpixel:assigned") {
		t.Error("expected custom event example")
	}
}

func TestGenerate_React(t *testing.T) {
	files, err := snippets.Generate(snippets.FrameworkReact, snippets.Config{
		ProjectID: "proj_1",
		ServerURL: "https://spx.example.com",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}

	hook := files[0]
	if hook.Filename != "useVariation.ts" {
		t.Errorf("expected useVariation.ts, got %s", hook.Filename)
	}
	if !strings.Contains(hook.Content, "const PROJECT_ID = 'proj_1';") {
		t.Error("expected project id constant in hook")
	}
	if !strings.Contains(hook.Content, "splitpixel:assigned") {
		t.Error("expected event listener in hook")
	}
}

func TestGenerate_Vue(t *testing.T) {
	files, err := snippets.Generate(snippets.FrameworkVue, snippets.Config{
		ProjectID: "proj_1",
		ServerURL: "https://spx.example.com",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if !strings.Contains(files[0].Content, "onMounted") {
		t.Error("expected Vue lifecycle usage")
	}
}

func TestGenerate_UnknownFrameworkFallsBackToHTML(t *testing.T) {
	files, err := snippets.Generate(snippets.Framework("angular"), snippets.Config{
		ProjectID: "proj_1",
		ServerURL: "https://spx.example.com",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if files[0].Filename != "splitpixel-embed.html" {
		t.Errorf("expected HTML fallback, got %s", files[0].Filename)
	}
}
