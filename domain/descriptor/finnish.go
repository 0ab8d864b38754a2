package descriptor

// Finnish returns the Finnish locale table. Only the similarity and
// human-likeness families are offered; the similarity scale is the signed
// -2..2 variant used in the Finnish deployment.
func Finnish() Locale {
	return Locale{
		Name: "finnish",
		SMOS: FamilyText{
			Min: -2, Max: 2, Default: 0,
			Labels: []string{
				"Ei sama puhuja",
				"Todennäköisesti ei sama puhuja",
				"En osaa sanoa",
				"Todennäköisesti sama puhuja",
				"Sama puhuja",
			},
			Scored: `### Puhujan samankaltaisuuden arviointi (similarity)
Sinua pyydetään kuuntelemaan kahta ääninäytettä: Ääni A ja Ääni B.

Ääninäytteet on voitu tallentaa eri olosuhteissa tai tuottaa eri tekniikoilla. Äänet voivat olla ihmisen tuottamia tai ne voivat olla keinotekoisia. Tehtäväsi ei ole tunnistaa, onko ääni ihmisen tuottama vai keinotekoinen, vaan yksinkertaisesti arvioida, edustavatko molemmat näytteet samaa puhujaa.

Tehtäväsi on kuunnella molemmat ääninäytteet kokonaan ja antaa arviosi. Keskity puhujan äänellisiin ominaisuuksiin (kuten sävyyn, äänenkorkeuteen ja puhetapaan) sen sijaan, että kiinnittäisit huomiota taustameluun, tallennuslaatuun tai sisältöön.

Käytä seuraavaa 5-portaista asteikkoa arvioinnissasi:

- -2 - Ei sama puhuja
- -1 - Todennäköisesti ei sama puhuja
- 0 - En osaa sanoa
- 1 - Todennäköisesti sama puhuja
- 2 - Sama puhuja

Luota ensivaikutelmaasi äläkä mieti päätöstäsi liikaa.
Käytä "En osaa sanoa" -vaihtoehtoa vain satunnaisesti, jos et todella kallistu kumpaankaan suuntaan.`,
			Instruction: `### Puhujan samankaltaisuuden arviointi (similarity)
Sinua pyydetään kuuntelemaan kahta ääninäytettä: Ääni A ja Ääni B.

Ääninäytteet on voitu tallentaa eri olosuhteissa tai tuottaa eri tekniikoilla. Äänet voivat olla ihmisen tuottamia tai ne voivat olla keinotekoisia. Tehtäväsi ei ole tunnistaa, onko ääni ihmisen tuottama vai keinotekoinen, vaan yksinkertaisesti arvioida, edustavatko molemmat näytteet samaa puhujaa.

Tehtäväsi on kuunnella molemmat ääninäytteet kokonaan ja antaa arviosi. Keskity puhujan äänellisiin ominaisuuksiin (kuten sävyyn, äänenkorkeuteen ja puhetapaan) sen sijaan, että kiinnittäisit huomiota taustameluun, tallennuslaatuun tai sisältöön.

Käytä seuraavaa 5-portaista asteikkoa arvioinnissasi:

- -2 - Ei sama puhuja
- -1 - Todennäköisesti ei sama puhuja
- 0 - En osaa sanoa
- 1 - Todennäköisesti sama puhuja
- 2 - Sama puhuja

Luota ensivaikutelmaasi äläkä mieti päätöstäsi liikaa.

**Tämä on ohjekysymys. Sinun tulisi arvioida tämä kysymys arvosanalla 2 - Sama puhuja, koska sekä äänellä A että äänellä B on sama puhuja.**`,
		},
		CMOS: FamilyText{
			Min: -3, Max: 3, Default: 0,
			Labels: []string{
				"Ääni A kuulostaa paljon enemmän ihmisen kaltaiselta",
				"Ääni A kuulostaa enemmän ihmisen kaltaiselta",
				"Ääni A kuulostaa hieman enemmän ihmisen kaltaiselta",
				"Molemmat kuulostavat yhtä ihmisen kaltaisilta",
				"Ääni B kuulostaa hieman enemmän ihmisen kaltaiselta",
				"Ääni B kuulostaa enemmän ihmisen kaltaiselta",
				"Ääni B kuulostaa paljon enemmän ihmisen kaltaiselta",
			},
			Scored: `### Puheen ihmismäisyyden arviointi (human-likeness)
Sinua pyydetään kuuntelemaan kahta ääninäytettä: Ääni A ja Ääni B.

Tehtäväsi on verrata kahta ääninäytettä ja arvioida, kumpi näytteistä kuulostaa enemmän ihmisääneltä. Tehtäväsi ei ole tunnistaa, onko ääni ihmisen tuottama vai keinotekoinen, vaan arvioida, kuinka ihmisen kaltaisilta näytteet kuulostavat.

Ääninäytteet on voitu tallentaa eri olosuhteissa tai tuottaa eri tekniikoilla, ja ne voivat sisältää erilaisia puhetyylejä. Keskity puheäänen ominaisuuksiin, äläkä kiinnitä huomiota taustameluun, tallennuslaatuun tai sisältöön.

Käytä seuraavaa 7-portaista asteikkoa arvioinnissasi:

- -3 - Ääni A kuulostaa paljon enemmän ihmisen kaltaiselta
- -2 - Ääni A kuulostaa enemmän ihmisen kaltaiselta
- -1 - Ääni A kuulostaa hieman enemmän ihmisen kaltaiselta
- 0 - Molemmat kuulostavat yhtä ihmisen kaltaisilta
- 1 - Ääni B kuulostaa hieman enemmän ihmisen kaltaiselta
- 2 - Ääni B kuulostaa enemmän ihmisen kaltaiselta
- 3 - Ääni B kuulostaa paljon enemmän ihmisen kaltaiselta

Kuuntele molemmat ääninäytteet kokonaan ennen arviosi antamista. Luota ensivaikutelmaasi äläkä mieti päätöstäsi liikaa. Käytä "0"-vaihtoehtoa vain satunnaisesti, jos et todella löydä eroa kahden näytteen välillä.`,
			Instruction: `### Puheen ihmismäisyyden arviointi (human-likeness)
Sinua pyydetään kuuntelemaan kahta ääninäytettä: Ääni A ja Ääni B.

Tehtäväsi on verrata kahta ääninäytettä ja arvioida, kumpi näytteistä kuulostaa enemmän ihmisääneltä. Tehtäväsi ei ole tunnistaa, onko ääni ihmisen tuottama vai keinotekoinen, vaan arvioida, kuinka ihmisen kaltaisilta näytteet kuulostavat.

Käytä seuraavaa 7-portaista asteikkoa arvioinnissasi:

- -3 - Ääni A kuulostaa paljon enemmän ihmisen kaltaiselta
- -2 - Ääni A kuulostaa enemmän ihmisen kaltaiselta
- -1 - Ääni A kuulostaa hieman enemmän ihmisen kaltaiselta
- 0 - Molemmat kuulostavat yhtä ihmisen kaltaisilta
- 1 - Ääni B kuulostaa hieman enemmän ihmisen kaltaiselta
- 2 - Ääni B kuulostaa enemmän ihmisen kaltaiselta
- 3 - Ääni B kuulostaa paljon enemmän ihmisen kaltaiselta

Kuuntele molemmat ääninäytteet kokonaan ennen arviosi antamista. Luota ensivaikutelmaasi äläkä mieti päätöstäsi liikaa.

**Tämä on ohjekysymys. Sinun tulisi arvioida tämä kysymys arvosanalla 0 - Molemmat kuulostavat yhtä ihmisiltä, koska sekä ääni A että ääni B ovat ihmisen tuottamia.**`,
		},
		Attention: `### Huomiotarkistus
Sekä viite- että kohdeäänitteet ovat identtisiä, ne ovat ohjeita sinulle tämän kysymyksen arvioimiseksi.

Arvioi kuten äänite ohjeisti.

- Asteikko: -3 - 3

Vaikka äänitteet ovat identtiset, **kuuntele molemmat äänitteet loppuun ennen vastaustesi lähettämistä.**`,

		PlaybackPrompt: "Kuuntele kaikki annetut äänitteet loppuun ennen vastauksen lähettämistä",
		ScorePrompt:    "Valitse arvosana",
		FinishEmail:    "Testi suoritettu! Kiitos osallistumisestasi! Voit sulkea tämän välilehden.",
		FinishExternal: "Testi suoritettu! Kiitos osallistumisestasi! Vastauksesi on tallennettu.",
		StudyFull:      "Osallistujien enimmäismäärä on saavutettu. Kiitos mielenkiinnostasi!",
	}
}
