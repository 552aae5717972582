package view

import (
	"github.com/PuerkitoBio/goquery"
)

const hiddenAttr = "hidden"

func (p *Page) ShowIndex() {
	p.Index.RemoveAttr(hiddenAttr)
	p.Detail.SetAttr(hiddenAttr, "")
}

func (p *Page) ShowDetail() {
	p.Detail.RemoveAttr(hiddenAttr)
	p.Index.SetAttr(hiddenAttr, "")
}

func (p *Page) IndexVisible() bool  { return visible(p.Index) }
func (p *Page) DetailVisible() bool { return visible(p.Detail) }

func visible(sel *goquery.Selection) bool {
	_, hidden := sel.Attr(hiddenAttr)
	return !hidden
}
