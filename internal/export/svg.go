package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/floorplan-microservice/internal/domain"
)

const (
	// svgScale - масштаб документа: 1 метр = 100 user units
	svgScale = 100.0
	// svgPadding - фиксированный отступ со всех сторон, user units
	svgPadding = 50.0

	// Отступы размерных аннотаций от края плана, user units
	svgDimensionLineOffset = 20.0
	svgDimensionTextOffset = 38.0
)

// svgStyles - встроенные CSS-правила для пяти классов элементов,
// подписей объектов и размерных аннотаций
const svgStyles = `.wall { fill: #333333; stroke: #000000; stroke-width: 2; }
.door { fill: #8b4513; stroke: #5d2f0d; stroke-width: 1.5; }
.window { fill: #87ceeb; stroke: #4682b4; stroke-width: 1.5; }
.opening { fill: none; stroke: #999999; stroke-width: 1.5; stroke-dasharray: 6 4; }
.object { fill: #d3d3d3; stroke: #808080; stroke-width: 1; }
.object-label { font-family: Helvetica, Arial, sans-serif; font-size: 14px; fill: #404040; text-anchor: middle; }
.dimension-line { stroke: #ff0000; stroke-width: 1; }
.dimension-text { font-family: Helvetica, Arial, sans-serif; font-size: 16px; fill: #ff0000; text-anchor: middle; }`

// EncodeSVG сериализует модель плана в документ SVG 1.1.
// Система координат: screen = (world - boundingBox.min) * 100, плюс отступ
// 50 единиц по обеим осям. Поворот элементов намеренно не эмитится -
// экспортируется неповёрнутый "плановый" вид (см. DESIGN.md).
// Для пустой модели возвращается минимальный корректный документ.
func EncodeSVG(plan domain.FloorPlanData, includeDimensions bool) string {
	box := plan.BoundingBox
	planWidth := box.Width() * svgScale
	planHeight := box.Height() * svgScale
	canvasWidth := planWidth + 2*svgPadding
	canvasHeight := planHeight + 2*svgPadding

	var b strings.Builder
	b.Grow(1024 + len(plan.Elements)*96)

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		svgNum(canvasWidth), svgNum(canvasHeight), svgNum(canvasWidth), svgNum(canvasHeight))
	b.WriteString("\n<style>\n")
	b.WriteString(svgStyles)
	b.WriteString("\n</style>\n")
	fmt.Fprintf(&b, `<g transform="translate(%s,%s)">`, svgNum(svgPadding), svgNum(svgPadding))
	b.WriteString("\n")

	// Порядок групп фиксирован: стены, двери, окна, проёмы, объекты
	for _, kind := range []domain.ElementKind{
		domain.ElementWall,
		domain.ElementDoor,
		domain.ElementWindow,
		domain.ElementOpening,
		domain.ElementObject,
	} {
		for _, e := range plan.Elements {
			if e.Kind != kind {
				continue
			}
			writeSVGElement(&b, e, box)
		}
	}

	if includeDimensions {
		writeSVGDimensions(&b, plan, planWidth, planHeight)
	}

	b.WriteString("</g>\n</svg>\n")
	return b.String()
}

// writeSVGElement эмитит один элемент как осевой <rect>; двери рисуются
// простым контуром без дуги открывания - это деталь интерактивного
// рендера, не экспортера
func writeSVGElement(b *strings.Builder, e domain.FloorPlanElement, box domain.BoundingBox) {
	x := (e.Rect.X - box.MinX) * svgScale
	y := (e.Rect.Y - box.MinY) * svgScale
	w := e.Rect.Width * svgScale
	h := e.Rect.Height * svgScale

	fmt.Fprintf(b, `  <rect class="%s" x="%s" y="%s" width="%s" height="%s"/>`,
		e.Kind, svgNum(x), svgNum(y), svgNum(w), svgNum(h))
	b.WriteString("\n")

	if e.Kind == domain.ElementObject && e.Label != "" {
		cx := x + w/2
		cy := y + h/2
		fmt.Fprintf(b, `  <text class="object-label" x="%s" y="%s">%s</text>`,
			svgNum(cx), svgNum(cy), escapeXML(e.Label))
		b.WriteString("\n")
	}
}

// writeSVGDimensions добавляет две размерные аннотации: ширину помещения
// под планом и глубину справа от плана (линия и подпись повёрнуты на 90°)
func writeSVGDimensions(b *strings.Builder, plan domain.FloorPlanData, planWidth, planHeight float64) {
	widthLabel := fmt.Sprintf("%.2fm", plan.RoomDimensions.Width)
	depthLabel := fmt.Sprintf("%.2fm", plan.RoomDimensions.Depth)

	lineY := planHeight + svgDimensionLineOffset
	textY := planHeight + svgDimensionTextOffset
	fmt.Fprintf(b, `  <line class="dimension-line" x1="0" y1="%s" x2="%s" y2="%s"/>`,
		svgNum(lineY), svgNum(planWidth), svgNum(lineY))
	b.WriteString("\n")
	fmt.Fprintf(b, `  <text class="dimension-text" x="%s" y="%s">%s</text>`,
		svgNum(planWidth/2), svgNum(textY), widthLabel)
	b.WriteString("\n")

	lineX := planWidth + svgDimensionLineOffset
	textX := planWidth + svgDimensionTextOffset
	fmt.Fprintf(b, `  <line class="dimension-line" x1="%s" y1="0" x2="%s" y2="%s"/>`,
		svgNum(lineX), svgNum(lineX), svgNum(planHeight))
	b.WriteString("\n")
	fmt.Fprintf(b, `  <text class="dimension-text" x="%s" y="%s" transform="rotate(90 %s %s)">%s</text>`,
		svgNum(textX), svgNum(planHeight/2), svgNum(textX), svgNum(planHeight/2), depthLabel)
	b.WriteString("\n")
}

// svgNum форматирует координату без хвостовых нулей
func svgNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
