// Package linker detects references to known work-order names inside
// free-form resolution step text and produces span annotations that a client
// can render as navigable links. It is pure text processing with no I/O.
package linker

import (
	"regexp"
)

// Annotation is the decomposition of a step around the first recognized
// work-order reference. Reassembling Prefix + CreationPrefix + LinkText +
// Suffix yields the original step verbatim.
type Annotation struct {
	// Prefix is the step text before the match (before the creation verb when
	// one is present).
	Prefix string
	// LinkText is the matched work-order name exactly as it appeared in-text.
	LinkText string
	// Suffix is everything from the "work order" phrase to the end of the step.
	Suffix string
	// HasCreationPrefix reports whether the reference was introduced by a
	// creation verb ("create a Truck Roll work order" vs "the Truck Roll work
	// order").
	HasCreationPrefix bool
	// CreationPrefix is the matched creation text including the optional
	// article and trailing whitespace; empty for bare mentions.
	CreationPrefix string
}

type namePatterns struct {
	name     string
	creation *regexp.Regexp
	bare     *regexp.Regexp
}

// Linker matches a fixed, ordered set of known work-order names against step
// text. Name order is the catalog listing order and decides precedence.
type Linker struct {
	patterns []namePatterns
}

// New compiles matchers for the given names, preserving their order. Names
// are matched case-insensitively as exact literal text; characters that are
// meaningful in regular expressions are escaped, never interpreted.
func New(names []string) *Linker {
	patterns := make([]namePatterns, 0, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}

		quoted := regexp.QuoteMeta(name)
		patterns = append(patterns, namePatterns{
			name:     name,
			creation: regexp.MustCompile(`(?i)(\bcreate\b\s+(?:(?:a|an|the)\b\s+)?)(` + quoted + `)(\s+work\s+order)`),
			bare:     regexp.MustCompile(`(?i)(` + quoted + `)(\s+work\s+order)`),
		})
	}

	return &Linker{patterns: patterns}
}

// AnnotateStep finds the first work-order reference in step and returns its
// decomposition. Precedence: the first name (in catalog order) whose creation
// pattern matches wins; only when no creation pattern matches anywhere does
// the first bare mention win. A step yields at most one annotation.
func (l *Linker) AnnotateStep(step string) (Annotation, bool) {
	for _, p := range l.patterns {
		if m := p.creation.FindStringSubmatchIndex(step); m != nil {
			return Annotation{
				Prefix:            step[:m[2]],
				CreationPrefix:    step[m[2]:m[3]],
				LinkText:          step[m[4]:m[5]],
				Suffix:            step[m[5]:],
				HasCreationPrefix: true,
			}, true
		}
	}

	for _, p := range l.patterns {
		if m := p.bare.FindStringSubmatchIndex(step); m != nil {
			return Annotation{
				Prefix:   step[:m[2]],
				LinkText: step[m[2]:m[3]],
				Suffix:   step[m[3]:],
			}, true
		}
	}

	return Annotation{}, false
}

// AnnotateSteps annotates each step independently; no state carries across
// steps. The returned slice is index-aligned with steps, with nil entries for
// steps that contain no known reference.
func (l *Linker) AnnotateSteps(steps []string) []*Annotation {
	annotations := make([]*Annotation, len(steps))

	for i, step := range steps {
		if a, ok := l.AnnotateStep(step); ok {
			annotations[i] = &a
		}
	}

	return annotations
}
