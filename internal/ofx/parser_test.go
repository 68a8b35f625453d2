package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>POS PURCHASE STARBUCKS STORE 1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012001
<NAME>Whole Foods Market
</STMTTRN>
<STMTTRN>
<TRNTYPE>ATM
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>-60.00
<FITID>2024012501
<NAME>ATM WITHDRAWAL
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile_BankStatement(t *testing.T) {
	parser := NewParser()

	records, account, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "1234567890", account)

	first := records[0]
	assert.Equal(t, "2024011501", first.ID)
	assert.Equal(t, 25.50, first.Amount, "debit amounts are stored positive")
	assert.Equal(t, "STARBUCKS STORE 1234", first.Merchant, "POS prefix is stripped")
	assert.Equal(t, "posted", first.Status)
	assert.Equal(t, 2024, first.Date.Year())

	second := records[1]
	assert.Equal(t, "Whole Foods Market", second.Merchant)
	assert.Equal(t, 125.00, second.Amount)

	third := records[2]
	assert.Equal(t, "cash", third.Category, "ATM withdrawals get an inferred category")
}

func TestParseFile_InvalidData(t *testing.T) {
	parser := NewParser()

	_, _, err := parser.ParseFile(context.Background(), strings.NewReader("this is not OFX"))
	require.Error(t, err)
}

func TestPreprocessOFX_FixesSeverityCase(t *testing.T) {
	parser := NewParser()

	got := parser.preprocessOFX("<SEVERITY>Info</SEVERITY>")
	assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", got)
}

func TestExtractMerchantName_PrefersMemoOverGenericName(t *testing.T) {
	assert.True(t, isGenericDescription("DEBIT"))
	assert.False(t, isGenericDescription("Whole Foods Market"))
}
