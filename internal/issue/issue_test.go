// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"testing"
)

func TestTopicsSortedAndComplete(t *testing.T) {
	topics := Topics()
	if len(topics) != len(issues) {
		t.Fatalf("Topics() returned %d topics, want %d", len(topics), len(issues))
	}
	for i := 1; i < len(topics); i++ {
		if topics[i-1] >= topics[i] {
			t.Errorf("Topics() not sorted: %q before %q", topics[i-1], topics[i])
		}
	}
}

func TestGetKnownTopics(t *testing.T) {
	for _, topic := range Topics() {
		iss := Get(topic)
		if iss == nil {
			t.Fatalf("Get(%q) = nil", topic)
		}
		if iss.Topic() != topic {
			t.Errorf("Get(%q).Topic() = %q", topic, iss.Topic())
		}
		if len(iss.MarkdownMsg()) == 0 {
			t.Errorf("Get(%q) has empty markdown", topic)
		}
	}
}

func TestGetUnknownTopic(t *testing.T) {
	if iss := Get(Topic("no-such-topic")); iss != nil {
		t.Errorf("Get(unknown) = %v, want nil", iss)
	}
}

func TestRenderUsesRenderer(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	var gotInput, gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotInput, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(TopicNotAZip).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "rendered" {
		t.Errorf("Render() = %q, want %q", out, "rendered")
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want %q", gotStyle, "dark")
	}
	if gotInput == "" {
		t.Error("renderer received empty markdown")
	}
}
