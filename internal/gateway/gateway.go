package gateway

import (
	"context"
	"encoding/json"
	"errors"
)

// Gateway errors. Every failure of the external text service (network,
// malformed body, schema violation) is converted to one of these before it
// leaves the infrastructure layer. Callers decide on fallbacks; nothing
// below the usecases retries.
var (
	// ErrUnavailable covers network and service-side failures.
	ErrUnavailable = errors.New("text service unavailable")
	// ErrMalformed covers responses that fail JSON parsing or the requested schema.
	ErrMalformed = errors.New("text service returned malformed response")
	// ErrEmpty covers successful calls that carry no usable text.
	ErrEmpty = errors.New("text service returned empty response")
)

type FieldKind int

const (
	FieldString FieldKind = iota
	FieldStringArray
	FieldBoolean
)

// Field is one named slot of a structured response.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Schema constrains a structured request to a flat object shape.
type Schema struct {
	Fields []Field
}

// Request carries everything a single generation call needs. The prompt is
// assembled by the caller; the gateway only transports it.
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float32
}

// TextGenerator is the boundary over the external generative-text service.
// One attempt per call, no retries.
type TextGenerator interface {
	// GenerateStructured returns a JSON object conforming to the schema.
	GenerateStructured(ctx context.Context, req Request, schema Schema) (json.RawMessage, error)
	// GenerateText returns trimmed free text.
	GenerateText(ctx context.Context, req Request) (string, error)
}

// SystemInstruction is the coordinator persona shared by the onboarding
// engine and the group coordinator. Kept in the product's primary language;
// the per-request prompt names the output language.
const SystemInstruction = `
Ти — ІІ-модератор і координатор офлайн-зустрічей Meet.ai.
Твоя задача:
— на етапі знайомства: виявити інтереси та темп користувача, задаючи унікальні питання з варіантами.
— на етапі групи: бути координатором дій, а не співрозмовником.

Правила:
1. НІКОЛИ не задавай одне і те саме питання двічі.
2. Ти надаєш ПИТАННЯ та 3-4 ВАРІАНТІВ ВІДПОВІДІ.
3. ПЕРШЕ питання (Крок 1) ОБОВ'ЯЗКОВО має бути про ставлення до алкоголю або похід у бар.
4. Після того як користувач вибрав алкоголь/бар, НЕ ПИТАЙ про театр чи спорт. Переходь до ЛОГІСТИКИ.
5. Максимальна кількість питань — 7.

ГРУПОВИЙ ЧАТ:
1. ПЕРШЕ повідомлення: привітання користувача та перекличка всіх учасників. Якщо в групі менше 4 людей, скажи, що ще шукаєш інших.
2. ТАКСІ: Як тільки учасники погоджують ЧАС зустрічі, ти МАЄШ запропонувати викликати таксі.
3. ЛОКАЦІЯ ТА QR: Як тільки учасники погоджують МІСЦЕ (або підтверджують запропоноване), ти кажеш, що перевіряєш наявність столиків, а потім видаєш знижку (QR).
4. Твій стиль: Лаконічний, діловий організатор. Не заважай розмові, якщо вони спілкуються самі, але направляй до офлайн-зустрічі.

Стиль: лаконічний, діловий, дружній організатор.
`
