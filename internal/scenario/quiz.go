package scenario

// QuizOptions builds the multiple-choice options for one symptom's
// "likely trigger" question: the correct cause plus up to three distractors
// drawn without replacement from the crop's other cause labels, shuffled.
func (g *Generator) QuizOptions(sc *Scenario, symptom string) []string {
	st, ok := sc.StressorFor(symptom)
	if !ok {
		return nil
	}

	options := []string{st.Cause}
	var distractors []string
	for _, cause := range sc.Crop.CauseLabels() {
		if cause != st.Cause {
			distractors = append(distractors, cause)
		}
	}

	for len(options) < 4 && len(distractors) > 0 {
		i := g.rng.Intn(len(distractors))
		options = append(options, distractors[i])
		distractors = append(distractors[:i], distractors[i+1:]...)
	}

	g.shuffle(options)
	if len(options) > 4 {
		options = options[:4]
	}
	return options
}

// shuffle is an in-place Fisher-Yates shuffle using the generator's source.
func (g *Generator) shuffle(items []string) {
	for i := len(items) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
