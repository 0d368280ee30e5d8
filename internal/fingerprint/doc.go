// Package fingerprint derives content hashes for rendered slides.
//
// SlideHash covers every input that changes how a slide looks: the card's
// display fields, the resolved names in display order, and the visual
// colors and fonts. Equal inputs always hash equally, so the hash keys the
// preview image cache; any change to the roster, the card, or the visual
// configuration yields a new key.
//
// The package performs no I/O.
package fingerprint
