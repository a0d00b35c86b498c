package ai

import "github.com/pkoukk/tiktoken-go"

// Бюджет на контекст сценария в промпте. Остальное место остается
// под системный промпт и пользовательский запрос.
const maxContextTokens = 2000

// trimToTokenBudget обрезает текст до budget токенов. Если токенизатор
// недоступен (нет данных энкодинга), текст уходит как есть: лимит
// страхует от раздутого промпта, а не обеспечивает корректность.
func trimToTokenBudget(text string, budget int) string {
	if text == "" || budget <= 0 {
		return text
	}
	tke, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return text
	}
	tokens := tke.Encode(text, nil, nil)
	if len(tokens) <= budget {
		return text
	}
	return tke.Decode(tokens[:budget])
}
