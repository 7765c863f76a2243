package solve

import "github.com/naeemahmed/doodlesolve/internal/core"

const interpretPrompt = `You are an AI assistant specialized in interpreting handwritten math equations.

Given an image of a math equation, your task is to accurately convert it into a readable text format.
Respond with the interpreted equation. Do not attempt to solve, only interpret. If the image does not contain a math equation, respond with 'No equation found'.`

const solvePromptPrefix = `You are an expert mathematician. Solve the following equation and provide the solution in LaTeX format, including all steps:

Equation: `

// combinedPrompt drives the single-stage variant: interpretation and
// solving in one call, with verbosity adapted to the problem. The
// complexity judgement is delegated entirely to the model.
const combinedPrompt = `You are a world-class mathematician and physics expert with a talent for clear, scientific communication.

### GOAL
Solve the math problem in the image.
**CRITICAL: ADAPTIVE COMPLEXITY**
- **IF SIMPLE (e.g., "2+2", "5x=10"):** Provide a **Short, Concise Answer**. No fluff. Just the steps and result.
- **IF COMPLEX (e.g., Calculus, Physics, Word Problems):** Provide a **BIG, DETAILED ANSWER**. Use "## Analysis", "## Derivation", "## Conclusion". Explain *why* and *how*.

### STRICT OUTPUT FORMAT
Return a JSON object:
1. "interpretedEquation": String of what you see.
2. "solutionLaTeX": Markdown string with the solution.

### STYLE & COLORS (NEON THEME)
- **Structure**: Use ` + "`# Title`" + ` and ` + "`## Section`" + ` headers.
- **Math**: Use LaTeX ($...$) for ALL math.
- **Colors**: You MUST use these exact colors for the "Neon" look:
  - **Variables**: ` + "`\\textcolor{teal}{x}`" + ` (Teal)
  - **Answers**: ` + "`\\textcolor{blue}{42}`" + ` (Blue)
  - **Operators**: ` + "`\\textcolor{purple}{+}`" + ` (Purple)
  - **Numbers**: ` + "`\\textcolor{orange}{5}`" + ` (Orange)
  - **Notes**: ` + "`\\textcolor{red}{!}`" + ` (Red)

If the image does not contain a math or physics problem, set "interpretedEquation" to 'No equation found' and leave "solutionLaTeX" empty.`

const (
	fieldInterpreted = "interpretedEquation"
	fieldSolution    = "solutionLaTeX"
)

var interpretSchema = core.Schema{
	Fields: []core.SchemaField{
		{
			Name:        fieldInterpreted,
			Description: "The interpreted math equation in a readable text format.",
			Required:    true,
		},
	},
}

var solveSchema = core.Schema{
	Fields: []core.SchemaField{
		{
			Name:        fieldSolution,
			Description: "The solution to the equation in LaTeX format.",
			Required:    true,
		},
	},
}

var combinedSchema = core.Schema{
	Fields: []core.SchemaField{
		{
			Name:        fieldInterpreted,
			Description: "The interpreted text or description of the drawing.",
			Required:    true,
		},
		{
			Name:        fieldSolution,
			Description: "A detailed response, explanation, or solution based on the drawing. Use markdown for formatting and LaTeX for equations.",
			Required:    false,
		},
	},
}
