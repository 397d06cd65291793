package roadmap

import (
	"fmt"
	"strings"
)

const metadataSystemPrompt = `You are an expert curriculum designer. You produce structured learning roadmap headers for self-directed learners.`

func buildMetadataUserMessage(topic string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Topic: %q\n", topic))
	b.WriteString(`
Provide the roadmap header for this topic: a brief 2-3 sentence description,
a total time estimate, the main prerequisites, how many phases the roadmap
should have, and the career paths it leads to.`)
	return b.String()
}

const phaseSystemPrompt = `You are an expert curriculum designer generating one phase of a learning roadmap at a time. Phases must build on each other without repeating earlier material.`

func buildPhaseUserMessage(topic string, phaseNumber, totalPhases int, previousContext string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create phase %d of %d for a learning roadmap on %q.\n", phaseNumber, totalPhases, topic))

	b.WriteString("\nPrevious phases:\n")
	if previousContext == "" {
		b.WriteString("None — this is the first phase.\n")
	} else {
		b.WriteString(previousContext)
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Label the phase "Phase %d". Give it a clear title, a duration estimate,
exactly 5 topics, and 2-3 resource types. Continue naturally from the
previous phases listed above.`, phaseNumber))

	return b.String()
}

const topicContentSystemPrompt = `You are an expert educational content creator. You write comprehensive, engaging deep-dive content for one topic of a learning roadmap.`

func buildTopicContentUserMessage(topic, phase, topicTitle string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Overall learning path: %s\n", topic))
	if phase != "" {
		b.WriteString(fmt.Sprintf("Current phase: %s\n", phase))
	}
	b.WriteString(fmt.Sprintf("Specific topic: %s\n", topicTitle))

	b.WriteString(`
Structure your response with these sections:

## Introduction
2-3 paragraphs introducing the topic and why it matters in this learning path.

## Core Concepts
Explain the fundamental concepts in detail, with clear examples and analogies.

## Key Points to Remember
5-7 actionable, memorable takeaways. Bold important terms within sentences.

## Practical Applications
2-3 real-world scenarios where this knowledge is applied.

## Learning Resources
Specific resource suggestions: courses or tutorials, documentation to read,
practice exercises, projects to build.

## Self-Assessment Questions
3-5 questions learners should be able to answer after studying this topic.`)

	return b.String()
}
