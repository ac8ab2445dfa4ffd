// Package catalog содержит статический каталог витрины: пакеты монет и тексты разделов.
package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownPackage возвращается при обращении к несуществующему пакету.
var ErrUnknownPackage = errors.New("unknown package")

// Package — пакет игровой валюты с фиксированной ценой.
type Package struct {
	// Price — цена в рублях с учётом комиссии.
	Price int64 `json:"price"`
	// Coins — количество монет в том виде, в каком оно показывается покупателю.
	Coins   string `json:"coins"`
	Popular bool   `json:"popular"`
}

var packages = [...]Package{
	{Price: 450, Coins: "500"},
	{Price: 910, Coins: "1,000"},
	{Price: 1820, Coins: "2,000", Popular: true},
	{Price: 2720, Coins: "3,000"},
	{Price: 4535, Coins: "5,000"},
	{Price: 9100, Coins: "10,000"},
	{Price: 13600, Coins: "15,000"},
	{Price: 18100, Coins: "20,000"},
	{Price: 22620, Coins: "25,000"},
	{Price: 45240, Coins: "50,000"},
}

// Packages возвращает копию каталога в порядке отображения.
func Packages() []Package {
	out := make([]Package, len(packages))
	copy(out, packages[:])
	return out
}

// Lookup возвращает пакет по индексу в каталоге.
func Lookup(index int) (Package, error) {
	const op = "catalog.Lookup"

	if index < 0 || index >= len(packages) {
		return Package{}, fmt.Errorf("%s: %w: %d", op, ErrUnknownPackage, index)
	}
	return packages[index], nil
}

// Description — подпись к оплате, например "2,000 монет".
func (p Package) Description() string {
	return p.Coins + " монет"
}

// CreditedMessage — текст уведомления о зачислении монет.
func (p Package) CreditedMessage() string {
	return p.Coins + " монет зачислены на ваш счёт"
}
