package descriptor

// Swedish returns the Swedish locale table. Like Finnish it offers only
// the similarity and human-likeness families, with the signed -2..2
// similarity scale.
func Swedish() Locale {
	return Locale{
		Name: "swedish",
		SMOS: FamilyText{
			Min: -2, Max: 2, Default: 0,
			Labels: []string{
				"inte samma talare",
				"troligen inte samma talare",
				"osäker",
				"troligen samma talare",
				"samma talare",
			},
			Scored: `### Instruktioner för test av talarlikhet
Du kommer att bli ombedd att lyssna på två ljudexempel: Ljud A och Ljud B.

Ljudexemplen kan ha spelats in under olika omständigheter eller producerats med hjälp av olika tekniker. De kan komma från mänskliga talare eller artificiella röster. Din uppgift är inte att avgöra om rösten är mänsklig eller artificiell, utan helt enkelt att utvärdera om båda ljudexemplen representerar samma talare.

Din uppgift är att lyssna igenom båda ljudexemplen helt och hållet, och sedan ge ditt omdöme. Fokusera på talarens röstegenskaper (till exempel ton, tonhöjd och talstil), snarare än på bakgrundsljud, inspelningskvalitet och innehåll.

Använd denna 5-gradiga skala för din bedömning:

- -2 - inte samma talare
- -1 - troligen inte samma talare
- 0 - osäker
- 1 - troligen samma talare
- 2 - samma talare

Det är viktigt att du litar på ditt första intryck och inte övertänker ditt beslut.
Använd bara "osäker" undantagsvis, då du verkligen inte lutar åt något håll alls.`,
			Instruction: `### Instruktioner för test av talarlikhet
Du kommer att bli ombedd att lyssna på två ljudexempel: Ljud A och Ljud B.

Ljudexemplen kan ha spelats in under olika omständigheter eller producerats med hjälp av olika tekniker. De kan komma från mänskliga talare eller artificiella röster. Din uppgift är inte att avgöra om rösten är mänsklig eller artificiell, utan helt enkelt att utvärdera om båda ljudexemplen representerar samma talare.

Använd denna 5-gradiga skala för din bedömning:

- -2 - inte samma talare
- -1 - troligen inte samma talare
- 0 - osäker
- 1 - troligen samma talare
- 2 - samma talare

Det är viktigt att du litar på ditt första intryck och inte övertänker ditt beslut.

**Detta är en riktlinjefråga. Du bör betygsätta frågan med poängen 2 - samma talare eftersom både ljud A och ljud B kommer från samma talare.**`,
		},
		CMOS: FamilyText{
			Min: -3, Max: 3, Default: 0,
			Labels: []string{
				"Audio A är mycket mer människolik",
				"Audio A är mer människolik",
				"Audio A är lite mer människolik",
				"De låter lika människolika",
				"Audio B är lite mer människolik",
				"Audio B är mer människolik",
				"Audio B är mycket mer människolik",
			},
			Scored: `### Instruktioner för test av människolikhet
Du kommer att bli ombedd att lyssna på två ljudexempel: Ljud A och Ljud B.

Din uppgift är att jämföra de två ljudexemplen och avgöra vilket som låter mest som en mänsklig röst. Du ska inte avgöra om rösten verkligen kommer från en människa, utan bara vilken som låter mest människolik.

Ljudexemplen kan skilja sig i hur de spelades in, hur de producerades, och i talstil. Fokusera på rösten i sig, inte på bakgrundsljud, inspelningskvalitet eller innehåll.

Använd denna 7-gradiga skala för din bedömning:

- -3 - Audio A är mycket mer människolik
- -2 - Audio A är mer människolik
- -1 - Audio A är lite mer människolik
- 0 - De låter lika människolika
- 1 - Audio B är lite mer människolik
- 2 - Audio B är mer människolik
- 3 - Audio B är mycket mer människolik

Lyssna igenom båda ljudexemplen helt och hållet innan du ger ditt omdöme.
Det är viktigt att du litar på ditt första intryck och inte övertänker ditt beslut.
Använd bara "lika" undantagsvis, då du verkligen inte lutar åt något håll alls.`,
			Instruction: `### Instruktioner för test av människolikhet
Du kommer att bli ombedd att lyssna på två ljudexempel: Ljud A och Ljud B.

Din uppgift är att jämföra de två ljudexemplen och avgöra vilket som låter mest som en mänsklig röst. Du ska inte avgöra om rösten verkligen kommer från en människa, utan bara vilken som låter mest människolik.

Använd denna 7-gradiga skala för din bedömning:

- -3 - Audio A är mycket mer människolik
- -2 - Audio A är mer människolik
- -1 - Audio A är lite mer människolik
- 0 - De låter lika människolika
- 1 - Audio B är lite mer människolik
- 2 - Audio B är mer människolik
- 3 - Audio B är mycket mer människolik

Lyssna igenom båda ljudexemplen helt och hållet innan du ger ditt omdöme.

**Detta är en riktlinjefråga. Du bör betygsätta frågan med poängen 0 - De låter lika människolika eftersom både ljud A och ljud B produceras av människor.**`,
		},
		Attention: `### Attention Check
Both the reference and target audios are identical; they are instructions to you on how to rate this question.

Please rate as the audio instructed.

- Scale: -3 to 3

Even though the audios are identical, **please finish listening to both audios before submitting your answer.**`,

		PlaybackPrompt: "Lyssna klart på alla ljudexempel innan du skickar in ditt svar",
		ScorePrompt:    "Välj ett betyg",
		FinishEmail:    "Testet är klart! Tack för ditt deltagande! Du kan stänga den här fliken.",
		FinishExternal: "Testet är klart! Tack för ditt deltagande! Dina svar har sparats.",
		StudyFull:      "Det maximala antalet deltagare har uppnåtts. Tack för ditt intresse!",
	}
}
