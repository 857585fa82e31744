package database

import "github.com/fabianengeln/paarspiel/internal/models"

const (
	categoryKommunikation = "🗣 Kommunikation"
	categoryNaehe         = "💞 Zärtlichkeit & Nähe"
	categoryAlltag        = "🤯 Alltagsstress & Bedürfnisse"
	categoryVisionen      = "🧭 Gemeinsame Visionen"
	categoryHumor         = "🎭 Humor & Leichtigkeit"
)

func question(text, category string) models.ContentItem {
	return models.ContentItem{Text: text, Category: category, Type: models.ContentTypeQuestion}
}

var baseQuestions = []models.ContentItem{
	question("Was war ein Missverständnis zwischen euch beiden, das euch zum Lachen gebracht hat?", categoryKommunikation),
	question("In welchen Situationen fühlst du dich am besten verstanden?", categoryKommunikation),
	question("Wie können wir in stressigen Zeiten besser kommunizieren?", categoryKommunikation),
	question("Welches Kommunikationsmuster von mir nervt dich manchmal (sachte formuliert)?", categoryKommunikation),
	question("Wie sprichst du am liebsten über schwierige Themen?", categoryKommunikation),
	question("Was bedeutet achtsame Kommunikation für dich?", categoryKommunikation),
	question("Wie können wir sicherstellen, dass wir uns auch ohne Worte verstehen?", categoryKommunikation),
	question("Wann fühlst du dich in Gesprächen mit mir am sichersten?", categoryKommunikation),
	question("Welche nonverbalen Signale von mir verstehst du am leichtesten?", categoryKommunikation),
	question("Wie gehen wir am besten mit Meinungsverschiedenheiten um?", categoryKommunikation),
	question("Was können wir tun, um unsere Kommunikation im Alltag bewusster zu gestalten?", categoryKommunikation),
	question("Gibt es etwas, das du dir schon immer mal trauen wolltest, mir zu sagen?", categoryKommunikation),

	question("Was ist deine Lieblingsart, Zuneigung zu zeigen oder zu empfangen?", categoryNaehe),
	question("Wann hast du dich mir zuletzt besonders nah gefühlt?", categoryNaehe),
	question("Wie können wir mehr zärtliche Momente in unseren Alltag bringen?", categoryNaehe),
	question("Was ist für dich ein perfekter kuscheliger Abend?", categoryNaehe),
	question("Gibt es eine Geste der Zärtlichkeit, die du besonders magst?", categoryNaehe),
	question("Wann hast du dich zuletzt von mir besonders begehrt gefühlt?", categoryNaehe),
	question("Wie wichtig ist dir körperliche Nähe im Vergleich zu emotionaler Nähe?", categoryNaehe),
	question("Welcher Ort ist für dich der Inbegriff von Romantik?", categoryNaehe),
	question("Was ist das Zärtlichste, das jemand je für dich getan hat?", categoryNaehe),
	question("Wie können wir unsere Intimität vertiefen?", categoryNaehe),
	question("Beschreibe einen Moment, in dem du dich mir ohne Worte nahe gefühlt hast.", categoryNaehe),
	question("Was bedeutet Sicherheit und Geborgenheit für dich in unserer Beziehung?", categoryNaehe),

	question("Wie kann ich dich an einem stressigen Tag am besten unterstützen?", categoryAlltag),
	question("Welches Bedürfnis von dir wird im Moment zu wenig erfüllt?", categoryAlltag),
	question("Was hilft dir am besten, um nach einem anstrengenden Tag abzuschalten?", categoryAlltag),
	question("Gibt es etwas, das ich tun oder lassen kann, um deinen Stress zu reduzieren?", categoryAlltag),
	question("Wie äußert sich Stress bei dir und wie erkenne ich das am besten?", categoryAlltag),
	question("Was brauchst du, um dich im Alltag mehr gesehen und wertgeschätzt zu fühlen?", categoryAlltag),
	question("Wie wichtig ist dir Zeit für dich alleine und wie können wir das ermöglichen?", categoryAlltag),
	question("Welche kleinen Dinge im Alltag geben dir Energie?", categoryAlltag),
	question("Gibt es eine Routine, die dir im Alltag fehlt und die wir einführen könnten?", categoryAlltag),
	question("Wie gehst du mit Überforderung um und wie kann ich dir dabei helfen?", categoryAlltag),
	question("Was bedeutet für dich ein unterstützendes Umfeld?", categoryAlltag),
	question("Welche Bedürfnisse sind für dich momentan am wichtigsten?", categoryAlltag),

	question("Was ist ein gemeinsamer Traum, den wir uns in den nächsten Jahren erfüllen wollen?", categoryVisionen),
	question("Wie stellen wir uns unser gemeinsames Leben in 5 Jahren vor?", categoryVisionen),
	question("Welches Abenteuer möchtest du unbedingt noch mit mir erleben?", categoryVisionen),
	question("Was ist uns beiden in Bezug auf unsere gemeinsame Zukunft am wichtigsten?", categoryVisionen),
	question("Gibt es ein Projekt, das wir unbedingt gemeinsam angehen sollten?", categoryVisionen),
	question("Wie können wir unsere individuellen Ziele und unsere gemeinsamen Visionen in Einklang bringen?", categoryVisionen),
	question("Welchen Beitrag möchtest du für die Welt leisten und wie können wir das gemeinsam tun?", categoryVisionen),
	question("Was ist der nächste Meilenstein, den wir als Paar erreichen wollen?", categoryVisionen),
	question("Wie können wir unsere gemeinsame Zeit noch erfüllender gestalten?", categoryVisionen),
	question("Was ist für dich das Wichtigste, das wir als Paar erschaffen können?", categoryVisionen),
	question("Welche Werte sind uns in unserer gemeinsamen Zukunft besonders wichtig?", categoryVisionen),
	question("Wie können wir sicherstellen, dass wir auf dem Weg zu unseren Zielen Spaß haben?", categoryVisionen),

	question("Was war der lustigste Moment, den wir zusammen erlebt haben?", categoryHumor),
	question("Welche Art von Humor teilen wir am meisten?", categoryHumor),
	question("Wie können wir mehr Leichtigkeit und Spaß in unseren Alltag bringen?", categoryHumor),
	question("Gibt es eine alberne Angewohnheit von mir, die du insgeheim magst?", categoryHumor),
	question("Was bringt dich sofort zum Lachen, egal wie deine Stimmung ist?", categoryHumor),
	question("Welches Spiel oder welche Aktivität macht uns beiden am meisten Spaß?", categoryHumor),
	question("Wie können wir auch in ernsten Situationen unseren Humor bewahren?", categoryHumor),
	question("Was ist die schönste Erinnerung an einen unbeschwerten Moment zusammen?", categoryHumor),
	question("Gibt es einen Insider-Witz, den nur wir verstehen?", categoryHumor),
	question("Wie können wir mehr spontane, lustige Momente in unseren Alltag integrieren?", categoryHumor),
	question("Was bedeutet für dich Leichtigkeit in einer Beziehung?", categoryHumor),
	question("Welche Kindheitserinnerung bringt dich immer zum Lachen?", categoryHumor),
}
