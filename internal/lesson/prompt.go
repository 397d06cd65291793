package lesson

import (
	"fmt"
	"strings"
)

const plannerSystemPrompt = `You are an expert instructional designer. You create structured lesson plans where every key concept is paired with a specific visual that helps teach it.`

func buildPlannerUserMessage(input Input, pointCount int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a lesson plan for teaching: %q\n", input.Topic))
	b.WriteString(fmt.Sprintf("Audience: %s with %s knowledge level.\n", input.AgeGroup, input.KnowledgeLevel))

	b.WriteString(fmt.Sprintf(`
Instructions:
1. Create exactly %d key points for comprehensive coverage of the topic.
2. For each key point, describe the ideal supporting visual. Make the
   visual_description VERY detailed and specific about what elements the
   image should contain (labels, colors, components, structure).
3. Write a search_query precise enough to find that visual with an image
   search engine.`, pointCount))

	return b.String()
}

const quizSystemPrompt = `You are creating a multiple-choice quiz that checks understanding of a lesson's key concepts.`

func buildQuizUserMessage(topic string, points []KeyPoint) string {
	titles := make([]string, len(points))
	for i, p := range points {
		titles[i] = p.PointTitle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Key points covered: %s\n", strings.Join(titles, ", ")))

	b.WriteString(`
Instructions:
Generate 5 multiple-choice questions that cover the main concepts. Format each as:

**Question N:** [Question text]

A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]

**Correct Answer:** [Letter]
**Explanation:** [Brief explanation]

Separate questions with a line containing only "---".`)

	return b.String()
}

const visionSystemPrompt = `You are analyzing an educational image. Your description will be used to create content that teaches students to read and interpret this specific visual, so it must enable someone who cannot see the image to understand it completely and accurately.`

func buildVisionUserMessage(point KeyPoint) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Concept: %q\n", point.PointTitle))
	b.WriteString(fmt.Sprintf("Expected visual type: %s\n", point.VisualDescription))

	b.WriteString(`
Provide an EXTREMELY DETAILED description of what is ACTUALLY visible in the attached image, covering:

1. Overall structure: what type of visual this is (diagram, flowchart, photograph, graph, ...) and its general layout.
2. Specific elements: ALL visible text, labels and annotations; shapes, symbols, colors and their significance; arrows, lines, connections and what they show; any legends, keys or scales.
3. Spatial organization: what is on the left, right, top, bottom; how elements are arranged relative to each other; the flow or sequence shown.
4. Key visual features: the most prominent elements and visible patterns or relationships.
5. Specific details students should notice: what to look at first, details that are easy to miss, visual cues that help understanding.

Be exhaustive and precise. If you see "X1, X2, X3", write exactly that - do not generalize as "inputs". If arrows point from A to B, name the exact start and end points. Name colors specifically (not "dark color" but "dark blue" or "navy").`)

	return b.String()
}

const sectionSystemPrompt = `You are creating educational content that teaches students to understand a concept by reading and interpreting the actual visual shown next to the text. Reference only elements present in the visual description you are given; never invent labels, colors or elements that are not mentioned.`

func buildSectionUserMessage(point KeyPoint, input Input, visualInfo string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", input.Topic))
	b.WriteString(fmt.Sprintf("Key concept: %s\n", point.PointTitle))
	b.WriteString(fmt.Sprintf("Audience: %s with %s knowledge level\n", input.AgeGroup, input.KnowledgeLevel))
	b.WriteString(fmt.Sprintf("\nActual visual present (analyzed by vision AI):\n%s\n", visualInfo))

	b.WriteString(`
Structure your response exactly as follows:

**Explanation**

2-3 engaging paragraphs introducing the concept for this audience, setting up why this visual representation helps understanding.

**Visual Guidance**

The most important section. Guide students through the ACTUAL visual: start with the specific visual type mentioned above, reference only the elements in the visual description, use its exact labels and terminology, walk through spatial relationships as described, and explain what each actual element represents.

**Key Takeaways**

3-4 bullet points connecting the actual visual elements to conceptual understanding.

**Real-world Connection**

1-2 paragraphs showing how this concept applies in real life, with examples appropriate for the audience.`)

	return b.String()
}
