package descriptor

// English returns the English locale table.
func English() Locale {
	return Locale{
		Name: "english",
		SMOS: FamilyText{
			Min: 1, Max: 5, Default: 3,
			Labels: []string{"Very Different", "Different", "Slightly Different", "Similar", "Very Similar"},
			Scored: `### Speaker Similarity Test (SMOS)
Please rate how similar the voice in the target audio is to the reference audio.

- Scale: 1-5 (1: Very Different, 5: Very Similar)
- The audios are recorded under various conditions, so please focus on the speaker's voice characteristics.
- Please finish listening to both audios before submitting your score.
- It's very important to trust your first impression and not overthink your answer.`,
			Instruction: `### Speaker Similarity Test (SMOS) - **Instruction**
**This is an instruction example where both audios are from the same speaker with different content.**

Please rate how similar the voice in the target audio is to the reference audio.

- Scale: 1-5 (1: Very Different, 5: Very Similar)
- The audios are recorded under various conditions, so please focus on the speaker's voice characteristics.
- Please finish listening to both audios before submitting your score.
- It's very important to trust your first impression and not overthink your answer.
- **For this instruction example, you should give a score of 5 since it's the same speaker.**`,
		},
		CMOS: FamilyText{
			Min: -3, Max: 3, Default: 0,
			Labels: []string{
				"Sample A is much better", "Sample A is better",
				"Sample A is slightly better", "Equal quality",
				"Sample B is slightly better", "Sample B is better",
				"Sample B is much better",
			},
			Scored: `### Comparative Mean Opinion Score Test (CMOS)
Please compare how human-sounding sample B is against sample A.

- Scale: -3 to +3
- Negative: Sample A is more human-sounding
- Positive: Sample B is more human-sounding
- 0: Equal quality

Tips:

- The audios are recorded under various conditions and in different speaking styles, so please focus on how much the voice sounds like a natural human voice.
- Please finish listening to both audios before submitting your score.
- It's very important to trust your first impression and not overthink your answer.`,
			Instruction: `### Comparative Mean Opinion Score Test (CMOS) - **Instruction**
Please compare how human-sounding sample B is against sample A.

- Scale: -3 to +3
- Negative: Sample A is more human-sounding
- Positive: Sample B is more human-sounding
- 0: Equal quality
- **For this instruction example, you should give a score of 0 since both are natural speech with equal quality.**

Tips:

- The audios are recorded under various conditions and in different speaking styles, so please focus on how much the voice sounds like a natural human voice.
- Please finish listening to both audios before submitting your score.
- It's very important to trust your first impression and not overthink your answer.`,
		},
		QMOS: FamilyText{
			Min: 1, Max: 5, Default: 3,
			Labels: []string{"Very Bad", "Bad", "Ok", "Good", "Very Good"},
			Scored: `### Speech Quality Test (QMOS)
Please rate the quality of the given audio.

- Scale: 1-5 (1: very bad, 2: bad, 3: ok, 4: good, 5: very good)
- Please finish listening to the given audio before submitting your score.
- It's very important to trust your first impression and not overthink your answer.

Please consider the following aspects for your rating:

1. How pleasant the speech sounds to your ear.
2. Whether there are any audio artefacts, such as background noise, crackling, echo, volume inconsistencies, or digital distortions.
3. Whether the speech is clear and intelligible for you.`,
			Instruction: `### Speech Quality Test (QMOS) - **Instruction**
**This is an instruction example where the given audio is high-quality speech.**

Please rate the quality of the given audio.

- Scale: 1-5 (1: very bad, 2: bad, 3: ok, 4: good, 5: very good)
- Please finish listening to the given audio before submitting your score.
- It's very important to trust your first impression and not overthink your answer.
- **For this instruction example, you should give a score of 5 since it's high-quality speech.**

Please consider the following aspects for your rating:

1. How pleasant the speech sounds to your ear.
2. Whether there are any audio artefacts, such as background noise, crackling, echo, volume inconsistencies, or digital distortions.
3. Whether the speech is clear and intelligible for you.`,
		},
		NMOS: FamilyText{
			Min: 1, Max: 5, Default: 3,
			Labels: []string{"Very Unnatural", "Unnatural", "Slightly Unnatural", "Natural", "Very Natural"},
			Scored: `### Speech Naturalness Test (NMOS)
Please rate how natural the voice in the given audio sounds.

- Scale: 1-5 (1: very unnatural, 5: very natural)
- The audios are recorded under various conditions, so please focus on how much the voice sounds like a natural human voice.
- Please finish listening to the given audio before submitting your score.
- It's very important to trust your first impression and not overthink your answer.`,
			Instruction: `### Speech Naturalness Test (NMOS) - **Instruction**
**This is an instruction example where the given audio is natural speech.**

Please rate how natural the voice in the given audio sounds.

- Scale: 1-5 (1: very unnatural, 5: very natural)
- Please finish listening to the given audio before submitting your score.
- It's very important to trust your first impression and not overthink your answer.
- **For this instruction example, you should give a score of 5 since it's natural human speech.**`,
		},
		EMOS: FamilyText{
			Min: 1, Max: 5, Default: 3,
			Labels: []string{"Very Unnatural", "Unnatural", "Slightly Unnatural", "Natural", "Very Natural"},
			Scored: `### Editing Mean Opinion Score Test (EMOS)
Please evaluate the edited speech based on the provided transcript.

**Instructions:**

1. Read the edited transcript below
2. Listen to the edited speech
3. Rate how natural (**human-sounding**) the speech is (1-5 scale)
4. Rate how well the editing is reflected in the speech (0-3 scale)

**Naturalness Scale:**

- 1: Very Unnatural
- 5: Very Natural

**Editing Effect Scale:**

- 0: The speech doesn't reflect the editing
- 1: Some editing is reflected
- 2: Most of the editing is reflected
- 3: All editing is reflected`,
			Instruction: `### Editing Mean Opinion Score Test (EMOS) - **Instruction**
Please evaluate the edited speech based on the provided edited transcript.
The edited transcript has one or more characters edited (e.g. replaced by other characters, extra characters inserted, the order of characters switched).

The edited transcript may contain incorrect or non-existent words, which is expected. Please focus on the naturalness of the speech and how well the editing is reflected in the speech.

**Instructions:**

1. Read the edited transcript below
2. Listen to the edited speech
3. Rate the naturalness of the speech (1-5 scale)
4. Rate how well the editing is reflected in the speech (0-3 scale)

**Naturalness Scale:**

- 1: Very Unnatural
- 5: Very Natural

**Editing Effect Scale:**

- 0: The speech doesn't reflect the editing
- 1: Some editing is reflected
- 2: Most of the editing is reflected
- 3: All editing is reflected`,
		},
		EMOSEditingLabels: []string{
			"The speech doesn't reflect the editing",
			"Some editing is reflected",
			"Most of the editing is reflected",
			"All editing is reflected",
		},
		Attention: `### Attention Check
Both the reference and target audios are identical; they are instructions to you on how to rate this question.

Please rate as the audio instructed.

- Scale: -3 to 3

Even though the audios are identical, **please finish listening to both audios before submitting your answer.**`,

		PlaybackPrompt: "Please finish listening to all given audio to completion",
		ScorePrompt:    "Please select a score",
		FinishEmail:    "Test completed! Thank you for participating! Please close this tab.",
		FinishExternal: "Test completed! Thank you for participating! Your results have been saved.",
		StudyFull:      "The maximum number of participants has been reached. Thank you for your interest!",
	}
}
