package decision

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"RetailSim/internal/model"
)

// Prompt asks the operator for each decision on a line-oriented terminal.
type Prompt struct {
	in        *bufio.Reader
	out       io.Writer
	basePrice float64
}

// NewPrompt creates an interactive source. basePrice is offered as the default price.
func NewPrompt(in io.Reader, out io.Writer, basePrice float64) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out, basePrice: basePrice}
}

func (p *Prompt) Name() string { return "interactive" }

func (p *Prompt) Next(ctx context.Context) (model.Decision, error) {
	volume, err := p.ask(ctx, "Transfer volume (0 - none): ")
	if err != nil {
		return model.Decision{}, err
	}
	buy, err := p.ask(ctx, "Buy a wholesale batch? (y/n): ")
	if err != nil {
		return model.Decision{}, err
	}
	price, err := p.ask(ctx, fmt.Sprintf("Selling price per unit (suggested %.2f): ", p.basePrice))
	if err != nil {
		return model.Decision{}, err
	}

	return model.Decision{
		TransferVolume: ParseVolume(volume),
		BuyOffer:       ParseYesNo(buy),
		SellingPrice:   ParsePrice(price, p.basePrice),
	}, nil
}

// ask prints a question and reads one line. A final line without a newline is
// still returned; EOF before any input ends the source.
func (p *Prompt) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrExhausted
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
