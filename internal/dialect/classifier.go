package dialect

// Classification is the result of scoring evidence for a file.
type Classification struct {
	Form            Form
	Score           int
	TotalScore      int
	Confidence      float64
	RunnerUp        Form
	RunnerUpScore   int
	ObservedSignals int
}

// Classifier scores evidence and chooses a dominant form.
// Callers apply their own thresholds.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Form: FormUnknown}
	}

	var scores [formCount]int
	total := 0
	observed := 0
	for _, h := range e.hints {
		observed++
		if h.Score <= 0 {
			continue
		}
		if h.Form <= FormUnknown || h.Form >= formCount {
			continue
		}
		scores[h.Form] += h.Score
		total += h.Score
	}

	bestForm := FormUnknown
	bestScore := 0
	runnerForm := FormUnknown
	runnerScore := 0
	for f := FormPortable; f < formCount; f++ {
		score := scores[f]
		if score > bestScore {
			runnerForm, runnerScore = bestForm, bestScore
			bestForm, bestScore = f, score
			continue
		}
		if score > runnerScore {
			runnerForm, runnerScore = f, score
		}
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}

	return Classification{
		Form:            bestForm,
		Score:           bestScore,
		TotalScore:      total,
		Confidence:      conf,
		RunnerUp:        runnerForm,
		RunnerUpScore:   runnerScore,
		ObservedSignals: observed,
	}
}
