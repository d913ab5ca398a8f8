// Package providers wires every vendor client into the core registry via
// side-effect imports.
package providers

import (
	_ "github.com/GavinoGM/Problem-Solver/src/ai/anthropic"
	_ "github.com/GavinoGM/Problem-Solver/src/ai/openai"
)
