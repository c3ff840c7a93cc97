package snippets

import (
	"bytes"
	"text/template"
)

type Framework string

const (
	FrameworkHTML  Framework = "html"
	FrameworkReact Framework = "react"
	FrameworkVue   Framework = "vue"
)

type Config struct {
	ProjectID string
	ServerURL string
}

type SnippetFile struct {
	Filename string
	Content  string
}

// Generate produces copy-paste integration snippets for embedding a
// project's script on a host site. The embed tag is the same
// everywhere; the framework variants wrap the show-for markup in the
// host's idiom.
func Generate(framework Framework, config Config) ([]SnippetFile, error) {
	switch framework {
	case FrameworkReact:
		return generateReact(config)
	case FrameworkVue:
		return generateVue(config)
	default:
		return generateHTML(config)
	}
}

func renderTemplate(name, content string, config Config) (string, error) {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, config); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func generateHTML(config Config) ([]SnippetFile, error) {
	content := `<!-- splitpixel experiment: {{.ProjectID}} -->
<script src="{{.ServerURL}}/s/{{.ProjectID}}" async></script>

<!-- Elements shown only for the listed variations -->
<div data-spx-show="A,B">Shown to variations A and B</div>
<div data-spx-show="C,D">Shown to variations C and D</div>

<!-- CSS can target the assignment on the document root -->
<style>
  html[data-spx-variation="A"] .hero { background: #0b6; }
</style>

<!-- Optional: react to the assignment from your own code -->
<script>
  document.addEventListener('splitpixel:assigned', function (e) {
    console.log('variation', e.detail.variation);
  });
</script>
`

	rendered, err := renderTemplate("html", content, config)
	if err != nil {
		return nil, err
	}

	return []SnippetFile{
		{Filename: "splitpixel-embed.html", Content: rendered},
	}, nil
}

func generateReact(config Config) ([]SnippetFile, error) {
	content := `import { useEffect, useState } from 'react';

const PROJECT_ID = '{{.ProjectID}}';
const SCRIPT_URL = '{{.ServerURL}}/s/{{.ProjectID}}';

export function useVariation(): string | null {
  const [variation, setVariation] = useState<string | null>(
    () => (window as any).splitpixel?.[PROJECT_ID]?.variation ?? null
  );

  useEffect(() => {
    if (variation) return;

    const onAssigned = (e: Event) => {
      const detail = (e as CustomEvent).detail;
      if (detail?.project === PROJECT_ID) setVariation(detail.variation);
    };
    document.addEventListener('splitpixel:assigned', onAssigned);

    if (!document.querySelector('script[src="' + SCRIPT_URL + '"]')) {
      const s = document.createElement('script');
      s.src = SCRIPT_URL;
      s.async = true;
      document.head.appendChild(s);
    }

    return () => document.removeEventListener('splitpixel:assigned', onAssigned);
  }, [variation]);

  return variation;
}
`

	rendered, err := renderTemplate("react", content, config)
	if err != nil {
		return nil, err
	}

	usage := `// Example usage:
import { useVariation } from './useVariation';

export default function Hero() {
  const variation = useVariation();

  if (variation === 'A' || variation === 'B') {
    return <h1>Ship faster</h1>;
  }
  return <h1>Build better</h1>;
}
`

	return []SnippetFile{
		{Filename: "useVariation.ts", Content: rendered},
		{Filename: "usage.tsx", Content: usage},
	}, nil
}

func generateVue(config Config) ([]SnippetFile, error) {
	content := `<template>
  <div v-if="variation">
    <h1 v-if="variation === 'A' || variation === 'B'">Ship faster</h1>
    <h1 v-else>Build better</h1>
  </div>
</template>

<script setup lang="ts">
import { ref, onMounted, onUnmounted } from 'vue';

const PROJECT_ID = '{{.ProjectID}}';
const SCRIPT_URL = '{{.ServerURL}}/s/{{.ProjectID}}';

const variation = ref<string | null>(
  (window as any).splitpixel?.[PROJECT_ID]?.variation ?? null
);

function onAssigned(e: Event) {
  const detail = (e as CustomEvent).detail;
  if (detail?.project === PROJECT_ID) variation.value = detail.variation;
}

onMounted(() => {
  document.addEventListener('splitpixel:assigned', onAssigned);
  if (!document.querySelector('script[src="' + SCRIPT_URL + '"]')) {
    const s = document.createElement('script');
    s.src = SCRIPT_URL;
    s.async = true;
    document.head.appendChild(s);
  }
});

onUnmounted(() => document.removeEventListener('splitpixel:assigned', onAssigned));
</script>
`

	rendered, err := renderTemplate("vue", content, config)
	if err != nil {
		return nil, err
	}

	return []SnippetFile{
		{Filename: "VariationGate.vue", Content: rendered},
	}, nil
}

// AllFrameworks returns all supported frameworks
func AllFrameworks() []Framework {
	return []Framework{
		FrameworkHTML,
		FrameworkReact,
		FrameworkVue,
	}
}
