package ai

import (
	"fmt"
	"strings"

	"akademikform/internal/domain/services"
)

// unspecified is how an unconstrained word bound is rendered in prompts.
const unspecified = "Belirtilmemiş"

// BuildGeneratePrompt assembles the instruction block for turning a draft
// into polished academic text. Pure formatting, no side effects.
func BuildGeneratePrompt(req *services.GenerateRequest) string {
	var b strings.Builder

	b.WriteString("Sen akademik metin yazma konusunda uzman bir asistansın. ")
	b.WriteString("Kullanıcının taslak metnini akademik, bilimsel ve profesyonel bir dile dönüştür.\n\n")

	writeContextHeader(&b, req.ProjectTitle, req.SectionTitle, req.Style, req.MinWords, req.MaxWords)

	b.WriteString("\n**TASK:**\n")
	b.WriteString("Aşağıdaki taslak metni akademik dile çevir, geliştir ve iyileştir:\n\n")
	b.WriteString(req.DraftContent)
	b.WriteString("\n")

	if req.AdditionalInstructions != "" {
		b.WriteString("\n**EK TALİMATLAR:**\n")
		b.WriteString(req.AdditionalInstructions)
		b.WriteString("\n")
	}

	b.WriteString("\n**ÖNEMLİ KURALLAR:**\n")
	b.WriteString("1. Metni Türkçe yaz (eğer taslak Türkçeyse)\n")
	b.WriteString("2. Akademik, bilimsel ve profesyonel bir dil kullan\n")
	b.WriteString("3. Gereksiz tekrarlardan kaçın\n")
	b.WriteString("4. Net, anlaşılır ve akıcı yaz\n")
	b.WriteString("5. Kelime sayısı limitlerini dikkate al\n")
	b.WriteString("6. Sadece metni döndür, açıklama veya başlık ekleme\n")

	return b.String()
}

// BuildRevisePrompt assembles the instruction block for reworking existing
// text under a user-supplied revision directive.
func BuildRevisePrompt(req *services.ReviseRequest) string {
	var b strings.Builder

	b.WriteString("Sen akademik metin yazma konusunda uzman bir asistansın. ")
	b.WriteString("Kullanıcı tarafından verilen talimatlar doğrultusunda metni revize et.\n\n")

	writeContextHeader(&b, req.ProjectTitle, req.SectionTitle, req.Style, req.MinWords, req.MaxWords)

	b.WriteString("\n**MEVCUT METİN:**\n")
	b.WriteString(req.CurrentContent)
	b.WriteString("\n")

	b.WriteString("\n**REVİZYON TALİMATI:**\n")
	b.WriteString(req.RevisionPrompt)
	b.WriteString("\n")

	b.WriteString("\n**ÖNEMLİ KURALLAR:**\n")
	b.WriteString("1. Sadece istenen değişiklikleri yap\n")
	b.WriteString("2. Metni Türkçe yaz (eğer orijinal Türkçeyse)\n")
	b.WriteString("3. Akademik, bilimsel ve profesyonel bir dil kullan\n")
	b.WriteString("4. Kelime sayısı limitlerini dikkate al\n")
	b.WriteString("5. Sadece metni döndür, açıklama veya başlık ekleme\n")

	return b.String()
}

func writeContextHeader(b *strings.Builder, projectTitle, sectionTitle, style string, minWords, maxWords int) {
	b.WriteString("**CONTEXT:**\n")
	fmt.Fprintf(b, "- Proje Başlığı: %s\n", projectTitle)
	fmt.Fprintf(b, "- Bölüm: %s\n", sectionTitle)
	fmt.Fprintf(b, "- Stil: %s\n", style)
	fmt.Fprintf(b, "- Min Kelime: %s\n", boundLabel(minWords))
	fmt.Fprintf(b, "- Max Kelime: %s\n", boundLabel(maxWords))
}

func boundLabel(words int) string {
	if words > 0 {
		return fmt.Sprintf("%d", words)
	}
	return unspecified
}

// FieldContextLabel picks a human-readable section label for the
// free-standing AI endpoints from an optional context map.
func FieldContextLabel(context map[string]any) string {
	if context == nil {
		return "Generic Content"
	}
	fieldType, _ := context["field_type"].(string)
	switch fieldType {
	case "scientific_merit_1_1":
		return "Konunun Önemi ve Araştırma Önerisinin Bilimsel Niteliği"
	case "scientific_merit_1_2":
		return "Amaç ve Hedefler"
	case "wide_impact":
		category, _ := context["category"].(string)
		return "Yaygın Etki - " + category
	default:
		return "Generic Content"
	}
}
