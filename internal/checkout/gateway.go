package checkout

import "context"

// Charge — данные списания, передаваемые шлюзу при переходе к обработке.
type Charge struct {
	Amount      int64
	Description string
	Email       string
	Method      Method
	// CardLast4 заполняется только для оплаты картой.
	CardLast4 string
}

// Gateway — подключаемый платёжный шлюз. Терминал вызывает Charge один раз
// за попытку, перед переходом на шаг обработки.
type Gateway interface {
	Charge(ctx context.Context, c Charge) error
}

// DemoGateway принимает любой платёж: деньги не списываются.
type DemoGateway struct{}

// Charge реализует Gateway.
func (DemoGateway) Charge(context.Context, Charge) error {
	return nil
}
