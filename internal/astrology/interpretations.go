package astrology

import (
	"fmt"
	"strings"
)

const (
	unknownSun       = "não foi possível determinar sua interpretação solar."
	unknownMoon      = "não foi possível determinar sua interpretação lunar."
	unknownAscendant = "não foi possível determinar sua interpretação ascendente."

	closingParagraph = "A interação entre esses três elementos principais do seu mapa cria uma dinâmica única que define sua jornada de vida. Os demais planetas em seu mapa adicionam camadas de complexidade e nuances a esta interpretação básica, influenciando áreas específicas como comunicação, relacionamentos, ação, expansão, limitações e transformações profundas."
)

var sunTexts = [SignCount]string{
	Aries:       "você tem uma personalidade energética, corajosa e pioneira. Tende a ser direto, assertivo e gosta de iniciar novos projetos com entusiasmo.",
	Taurus:      "você possui uma personalidade determinada, prática e sensual. Valoriza a estabilidade, conforto material e possui grande resistência.",
	Gemini:      "você tem uma mente ágil, curiosa e versátil. Comunica-se com facilidade, adapta-se rapidamente às mudanças e busca conhecimentos variados.",
	Cancer:      "você possui uma personalidade sensível, protetora e intuitiva. Valoriza a família, as raízes e tem uma forte conexão emocional com o passado.",
	Leo:         "você tem uma personalidade magnética e um forte desejo de expressar-se criativamente. É generoso, leal e naturalmente assume posições de liderança.",
	Virgo:       "você possui um senso de análise aguçado e busca aperfeiçoamento constante. É metódico, prático e atento aos detalhes em tudo que faz.",
	Libra:       "você valoriza a harmonia, equilíbrio e justiça. Tem grande senso estético, diplomacia natural e busca parcerias significativas.",
	Scorpio:     "você possui uma personalidade intensa, perceptiva e transformadora. Busca profundidade emocional e tem grande poder de regeneração.",
	Sagittarius: "você tem espírito aventureiro, otimista e filosófico. Busca expansão de horizontes, conhecimento e experiências que ampliem sua visão de mundo.",
	Capricorn:   "você possui uma personalidade determinada, responsável e ambiciosa. Valoriza conquistas concretas e tem grande capacidade de organização.",
	Aquarius:    "você tem uma mente inovadora, independente e humanitária. Valoriza a liberdade intelectual e frequentemente está à frente do seu tempo.",
	Pisces:      "você possui uma personalidade sensível, compassiva e intuitiva. Tem forte conexão com o plano espiritual e grande capacidade criativa.",
}

var moonTexts = [SignCount]string{
	Aries:       "revela uma natureza emocional impulsiva e entusiástica, com necessidade de agir rapidamente conforme seus sentimentos.",
	Taurus:      "mostra uma natureza emocional estável e sensual, com forte necessidade de segurança material e conforto.",
	Gemini:      "indica uma natureza emocional versátil e curiosa, com necessidade de comunicação e estímulo mental constante.",
	Cancer:      "revela uma natureza emocional profunda e intuitiva, com grande necessidade de segurança emocional e conexões familiares.",
	Leo:         "mostra uma natureza emocional calorosa e dramática, com necessidade de reconhecimento e expressão criativa.",
	Virgo:       "indica uma natureza emocional analítica e prática, com necessidade de ordem e utilidade em sua vida afetiva.",
	Libra:       "revela uma natureza emocional equilibrada e harmoniosa, com forte necessidade de relacionamentos e beleza.",
	Scorpio:     "mostra uma natureza emocional intensa e profunda, com necessidade de intimidade e transformação emocional.",
	Sagittarius: "indica uma natureza emocional otimista e expansiva, com necessidade de liberdade e crescimento.",
	Capricorn:   "revela uma natureza emocional reservada e responsável, com necessidade de estrutura e realizações concretas.",
	Aquarius:    "mostra uma natureza emocional independente e original, com necessidade de amizades e causas coletivas.",
	Pisces:      "indica uma natureza emocional sensível e compassiva, com necessidade de conexão espiritual e escape criativo.",
}

var ascendantTexts = [SignCount]string{
	Aries:       "traz uma aparência energética e direta ao mundo exterior. Você tende a agir rapidamente e mostra-se como uma pessoa assertiva e pioneira.",
	Taurus:      "traz uma aparência estável e confiável ao mundo exterior. Você tende a agir com determinação e mostra-se como uma pessoa prática e sensual.",
	Gemini:      "traz uma aparência comunicativa e adaptável ao mundo exterior. Você tende a expressar-se facilmente e mostra-se como uma pessoa versátil e curiosa.",
	Cancer:      "traz uma aparência sensível e protetora ao mundo exterior. Você tende a agir com cuidado e mostra-se como uma pessoa receptiva e acolhedora.",
	Leo:         "traz uma aparência marcante e confiante ao mundo exterior. Você tende a se apresentar com dignidade e mostra-se como uma pessoa carismática e criativa.",
	Virgo:       "traz uma aparência organizada e analítica ao mundo exterior. Você tende a agir com precisão e mostra-se como uma pessoa atenta aos detalhes e prestativa.",
	Libra:       "traz uma aparência elegante e diplomática ao mundo exterior. Você tende a agir com equilíbrio e mostra-se como uma pessoa harmoniosa e sociável.",
	Scorpio:     "traz uma aparência magnética e reservada ao mundo exterior. Você tende a agir com intensidade e mostra-se como uma pessoa perspicaz e profunda.",
	Sagittarius: "traz uma aparência otimista e expansiva ao mundo exterior. Você tende a agir com entusiasmo e mostra-se como uma pessoa aventureira e filosófica.",
	Capricorn:   "traz uma aparência séria e responsável ao mundo exterior. Você tende a agir com disciplina e mostra-se como uma pessoa ambiciosa e competente.",
	Aquarius:    "traz uma aparência original e independente ao mundo exterior. Você tende a agir de forma inovadora e mostra-se como uma pessoa progressista e intelectual.",
	Pisces:      "traz uma aparência receptiva e compassiva ao mundo exterior. Você tende a agir com sensibilidade e mostra-se como uma pessoa intuitiva e adaptável.",
}

func signText(table *[SignCount]string, s Sign, fallback string) string {
	if !s.Valid() {
		return fallback
	}
	return table[s]
}

// SunInterpretation returns the paragraph for a sun sign.
func SunInterpretation(s Sign) string {
	return signText(&sunTexts, s, unknownSun)
}

// MoonInterpretation returns the paragraph for a moon sign.
func MoonInterpretation(s Sign) string {
	return signText(&moonTexts, s, unknownMoon)
}

// AscendantInterpretation returns the paragraph for an ascendant.
func AscendantInterpretation(s Sign) string {
	return signText(&ascendantTexts, s, unknownAscendant)
}

// FullInterpretation weaves sun, moon and ascendant into four paragraphs
// separated by blank lines.
func FullInterpretation(sun, moon, ascendant Sign) string {
	paragraphs := []string{
		fmt.Sprintf("Seu mapa astral revela uma personalidade complexa e multifacetada. Com Sol em %s, %s",
			sun, SunInterpretation(sun)),
		fmt.Sprintf("Sua Lua em %s %s Isto significa que internamente, sua natureza emocional busca satisfação através desses aspectos.",
			moon, MoonInterpretation(moon)),
		fmt.Sprintf("Com Ascendente em %s, você %s Esta é a máscara que você usa quando conhece novas pessoas e como o mundo tende a vê-lo inicialmente.",
			ascendant, AscendantInterpretation(ascendant)),
		closingParagraph,
	}
	return strings.Join(paragraphs, "\n\n")
}
